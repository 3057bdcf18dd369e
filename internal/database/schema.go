package database

// Timestamps are unix milliseconds so both dialects share one query set.
// Statements are split on ';', so comments here must not contain one.

const postgresSchema = `
-- Trainers, keyed by display name
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	coins BIGINT NOT NULL DEFAULT 0 CHECK (coins >= 0),
	title TEXT NOT NULL DEFAULT '',
	level INTEGER NOT NULL DEFAULT 1,
	xp BIGINT NOT NULL DEFAULT 0 CHECK (xp >= 0),
	current_zone TEXT NOT NULL DEFAULT 'meadow',
	shiny_charm INTEGER NOT NULL DEFAULT 0,
	avatar TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	name_color TEXT NOT NULL DEFAULT '',
	created_at BIGINT NOT NULL,
	last_seen_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS ball_inventory (
	user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	great BIGINT NOT NULL DEFAULT 0 CHECK (great >= 0),
	ultra BIGINT NOT NULL DEFAULT 0 CHECK (ultra >= 0),
	master BIGINT NOT NULL DEFAULT 0 CHECK (master >= 0)
);

CREATE TABLE IF NOT EXISTS stone_inventory (
	user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	fire_stone BIGINT NOT NULL DEFAULT 0 CHECK (fire_stone >= 0),
	water_stone BIGINT NOT NULL DEFAULT 0 CHECK (water_stone >= 0),
	thunder_stone BIGINT NOT NULL DEFAULT 0 CHECK (thunder_stone >= 0),
	leaf_stone BIGINT NOT NULL DEFAULT 0 CHECK (leaf_stone >= 0),
	moon_stone BIGINT NOT NULL DEFAULT 0 CHECK (moon_stone >= 0),
	sun_stone BIGINT NOT NULL DEFAULT 0 CHECK (sun_stone >= 0),
	dragon_scale BIGINT NOT NULL DEFAULT 0 CHECK (dragon_scale >= 0)
);

CREATE TABLE IF NOT EXISTS active_effects (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	effect_type TEXT NOT NULL,
	expires_at BIGINT,
	uses_remaining INTEGER,
	created_at BIGINT NOT NULL,
	UNIQUE (user_id, effect_type)
);

-- Append-only catch history, evolutions point back at their source row
CREATE TABLE IF NOT EXISTS creatures (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	species_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	shiny INTEGER NOT NULL DEFAULT 0,
	zone TEXT NOT NULL,
	evolved_from BIGINT REFERENCES creatures(id),
	caught_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	achievement_id TEXT NOT NULL,
	unlocked_at BIGINT NOT NULL,
	PRIMARY KEY (user_id, achievement_id)
);

CREATE TABLE IF NOT EXISTS presentations (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	started_at BIGINT NOT NULL,
	ended_at BIGINT
);

CREATE TABLE IF NOT EXISTS session_stats (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	presentation_id BIGINT NOT NULL REFERENCES presentations(id) ON DELETE CASCADE,
	reactions BIGINT NOT NULL DEFAULT 0,
	questions BIGINT NOT NULL DEFAULT 0,
	drinks BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, presentation_id)
);

CREATE TABLE IF NOT EXISTS questions (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	presentation_id BIGINT REFERENCES presentations(id) ON DELETE SET NULL,
	text TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	votes BIGINT NOT NULL DEFAULT 0,
	created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS question_votes (
	question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (question_id, user_id)
);

CREATE TABLE IF NOT EXISTS kudos (
	id BIGSERIAL PRIMARY KEY,
	from_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	to_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	message TEXT NOT NULL DEFAULT '',
	created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC);
CREATE INDEX IF NOT EXISTS idx_creatures_user_id ON creatures(user_id);
CREATE INDEX IF NOT EXISTS idx_questions_presentation ON questions(presentation_id);
CREATE INDEX IF NOT EXISTS idx_kudos_pair ON kudos(from_user_id, to_user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_presentations_open ON presentations(ended_at);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	coins INTEGER NOT NULL DEFAULT 0 CHECK (coins >= 0),
	title TEXT NOT NULL DEFAULT '',
	level INTEGER NOT NULL DEFAULT 1,
	xp INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
	current_zone TEXT NOT NULL DEFAULT 'meadow',
	shiny_charm INTEGER NOT NULL DEFAULT 0,
	avatar TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	name_color TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	last_seen_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ball_inventory (
	user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	great INTEGER NOT NULL DEFAULT 0 CHECK (great >= 0),
	ultra INTEGER NOT NULL DEFAULT 0 CHECK (ultra >= 0),
	master INTEGER NOT NULL DEFAULT 0 CHECK (master >= 0)
);

CREATE TABLE IF NOT EXISTS stone_inventory (
	user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	fire_stone INTEGER NOT NULL DEFAULT 0 CHECK (fire_stone >= 0),
	water_stone INTEGER NOT NULL DEFAULT 0 CHECK (water_stone >= 0),
	thunder_stone INTEGER NOT NULL DEFAULT 0 CHECK (thunder_stone >= 0),
	leaf_stone INTEGER NOT NULL DEFAULT 0 CHECK (leaf_stone >= 0),
	moon_stone INTEGER NOT NULL DEFAULT 0 CHECK (moon_stone >= 0),
	sun_stone INTEGER NOT NULL DEFAULT 0 CHECK (sun_stone >= 0),
	dragon_scale INTEGER NOT NULL DEFAULT 0 CHECK (dragon_scale >= 0)
);

CREATE TABLE IF NOT EXISTS active_effects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	effect_type TEXT NOT NULL,
	expires_at INTEGER,
	uses_remaining INTEGER,
	created_at INTEGER NOT NULL,
	UNIQUE (user_id, effect_type)
);

CREATE TABLE IF NOT EXISTS creatures (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	species_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	shiny INTEGER NOT NULL DEFAULT 0,
	zone TEXT NOT NULL,
	evolved_from INTEGER REFERENCES creatures(id),
	caught_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	achievement_id TEXT NOT NULL,
	unlocked_at INTEGER NOT NULL,
	PRIMARY KEY (user_id, achievement_id)
);

CREATE TABLE IF NOT EXISTS presentations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL DEFAULT '',
	started_at INTEGER NOT NULL,
	ended_at INTEGER
);

CREATE TABLE IF NOT EXISTS session_stats (
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	presentation_id INTEGER NOT NULL REFERENCES presentations(id) ON DELETE CASCADE,
	reactions INTEGER NOT NULL DEFAULT 0,
	questions INTEGER NOT NULL DEFAULT 0,
	drinks INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, presentation_id)
);

CREATE TABLE IF NOT EXISTS questions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	presentation_id INTEGER REFERENCES presentations(id) ON DELETE SET NULL,
	text TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	votes INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_votes (
	question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (question_id, user_id)
);

CREATE TABLE IF NOT EXISTS kudos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	from_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	to_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	message TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC);
CREATE INDEX IF NOT EXISTS idx_creatures_user_id ON creatures(user_id);
CREATE INDEX IF NOT EXISTS idx_questions_presentation ON questions(presentation_id);
CREATE INDEX IF NOT EXISTS idx_kudos_pair ON kudos(from_user_id, to_user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_presentations_open ON presentations(ended_at);
`

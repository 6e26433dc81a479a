package database

import "context"

// schemaStatements is applied in order at startup. Every statement is
// idempotent so repeated boots are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'recruiter',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,

	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		keywords TEXT[] NOT NULL DEFAULT '{}',
		skill_weights JSONB NOT NULL DEFAULT '{}',
		created_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_descriptions_created_by ON job_descriptions(created_by)`,

	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		candidate_name TEXT NOT NULL,
		candidate_email TEXT NOT NULL DEFAULT '',
		file_name TEXT NOT NULL DEFAULT '',
		file_url TEXT NOT NULL DEFAULT '',
		extracted_text TEXT NOT NULL DEFAULT '',
		extracted_skills TEXT[] NOT NULL DEFAULT '{}',
		uploaded_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS screening_results (
		id UUID PRIMARY KEY,
		resume_id UUID NOT NULL REFERENCES resumes(id),
		job_description_id UUID NOT NULL REFERENCES job_descriptions(id),
		overall_score DOUBLE PRECISION NOT NULL,
		skill_matches JSONB NOT NULL DEFAULT '{}',
		keyword_matches JSONB NOT NULL DEFAULT '{}',
		match_details JSONB NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'pending',
		recruiter_rating INT,
		recruiter_notes TEXT,
		screened_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_screening_results_score ON screening_results(overall_score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_screening_results_job ON screening_results(job_description_id)`,
}

func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

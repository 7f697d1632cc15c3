package db

// Schema is the DDL for the aquahealth tables. Every statement is idempotent.
const Schema = `
CREATE SCHEMA IF NOT EXISTS aquahealth;

CREATE TABLE IF NOT EXISTS aquahealth.water_sources (
    id           integer PRIMARY KEY,
    name         text NOT NULL,
    lat          double precision NOT NULL,
    lng          double precision NOT NULL,
    status       text NOT NULL,
    last_checked text NOT NULL DEFAULT '',
    updated_at   timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS aquahealth.health_centers (
    id         integer PRIMARY KEY,
    name       text NOT NULL,
    type       text NOT NULL,
    lat        double precision NOT NULL,
    lng        double precision NOT NULL,
    contact    text NOT NULL DEFAULT '',
    hours      text NOT NULL DEFAULT '',
    updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS aquahealth.alerts (
    id          bigserial PRIMARY KEY,
    source_id   integer,
    source_name text NOT NULL,
    message     text NOT NULL,
    status      text NOT NULL,
    created_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS aquahealth.symptom_baseline (
    symptom  text PRIMARY KEY,
    count    integer NOT NULL,
    date     text NOT NULL,
    position integer NOT NULL
);

CREATE TABLE IF NOT EXISTS aquahealth.symptom_reports (
    id          uuid PRIMARY KEY,
    symptom_id  text NOT NULL,
    symptom     text NOT NULL,
    reported_at timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS aquahealth.feedback (
    id         uuid PRIMARY KEY,
    text       text NOT NULL,
    created_at timestamptz NOT NULL
);
`

package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id               INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    industry             TEXT,
    economy              TEXT,
    lifecycle            TEXT,
    weeks                INTEGER NOT NULL,
    initial_balance      REAL,
    weekly_revenue       REAL,
    weekly_expenses      REAL,
    cumulative_revenue   REAL,
    cumulative_expenses  REAL,
    net_profit           REAL,
    profit_margin_pct    REAL,
    break_even_week      INTEGER,
    burn_rate            REAL
);

CREATE TABLE IF NOT EXISTS run_points (
    run_id               INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    week                 INTEGER NOT NULL,
    revenue              REAL,
    expenses             REAL,
    balance              REAL,
    PRIMARY KEY (run_id, week)
);

CREATE TABLE IF NOT EXISTS run_scenarios (
    run_id               INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    name                 TEXT NOT NULL,
    revenue              REAL,
    expenses             REAL,
    profit               REAL,
    roi                  REAL,
    variance             REAL,
    PRIMARY KEY (run_id, name)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

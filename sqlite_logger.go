package contagiongo

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteLogger is a TrajectoryLogger that writes simulation data to SQLite
// databases, one table per instance within a shared database file per
// output kind, following the teacher's SQLiteLogger.
type SQLiteLogger struct {
	trajectoryPath string
	infectionPath  string
	recoveryPath   string
	instanceID     int
}

// NewSQLiteLogger creates a new logger that writes to SQLite databases.
func NewSQLiteLogger(basepath string, i int) *SQLiteLogger {
	l := new(SQLiteLogger)
	l.SetBasePath(basepath, i)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *SQLiteLogger) SetBasePath(basepath string, i int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += fmt.Sprintf("log.%03d", i)
	}
	l.trajectoryPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%s.db", "traj")
	l.infectionPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%s.db", "inf")
	l.recoveryPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%s.db", "rec")
	l.instanceID = i
}

// Init creates a table per output kind for this instance.
func (l *SQLiteLogger) Init() error {
	newTable := func(path, tableName, cols string) error {
		db, err := OpenSQLiteDBOptimized(path)
		if err != nil {
			return err
		}
		defer db.Close()
		_sqlStmt := `
	create table %s %s;
	delete from %s;
	`
		fullTableName := fmt.Sprintf("%s%03d", tableName, l.instanceID)
		sqlStmt := fmt.Sprintf(_sqlStmt, fullTableName, cols, fullTableName)
		if _, err := db.Exec(sqlStmt); err != nil {
			return fmt.Errorf("%q: %s", err, sqlStmt)
		}
		return nil
	}

	if err := newTable(l.trajectoryPath, "Trajectory", "(id integer not null primary key, runID text, time real, s int, i int, r int)"); err != nil {
		return err
	}
	if err := newTable(l.infectionPath, "Infection", "(id integer not null primary key, runID text, node int, time real)"); err != nil {
		return err
	}
	if err := newTable(l.recoveryPath, "Recovery", "(id integer not null primary key, runID text, node int, time real)"); err != nil {
		return err
	}
	return nil
}

// WriteTrajectory inserts every compartment-count sample in a single
// transaction.
func (l *SQLiteLogger) WriteTrajectory(c <-chan TrajectoryPointPackage) {
	tableName := fmt.Sprintf("Trajectory%03d", l.instanceID)
	stmtText := "insert into " + tableName + "(runID, time, s, i, r) values(?, ?, ?, ?, ?)"
	db, err := OpenSQLiteDBOptimized(l.trajectoryPath)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
		return
	}
	stmt, err := tx.Prepare(stmtText)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer stmt.Close()
	for pt := range c {
		if _, err := stmt.Exec(pt.runID.String(), pt.time, pt.s, pt.i, pt.r); err != nil {
			log.Fatal(err)
			return
		}
	}
	tx.Commit()
}

// WriteInfections inserts every infection event in a single transaction.
func (l *SQLiteLogger) WriteInfections(c <-chan InfectionPackage) {
	tableName := fmt.Sprintf("Infection%03d", l.instanceID)
	stmtText := "insert into " + tableName + "(runID, node, time) values(?, ?, ?)"
	db, err := OpenSQLiteDBOptimized(l.infectionPath)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
		return
	}
	stmt, err := tx.Prepare(stmtText)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer stmt.Close()
	for pkg := range c {
		if _, err := stmt.Exec(pkg.runID.String(), pkg.node, pkg.time); err != nil {
			log.Fatal(err)
			return
		}
	}
	tx.Commit()
}

// WriteRecoveries inserts every recovery event in a single transaction.
func (l *SQLiteLogger) WriteRecoveries(c <-chan RecoveryPackage) {
	tableName := fmt.Sprintf("Recovery%03d", l.instanceID)
	stmtText := "insert into " + tableName + "(runID, node, time) values(?, ?, ?)"
	db, err := OpenSQLiteDBOptimized(l.recoveryPath)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
		return
	}
	stmt, err := tx.Prepare(stmtText)
	if err != nil {
		log.Fatal(err)
		return
	}
	defer stmt.Close()
	for pkg := range c {
		if _, err := stmt.Exec(pkg.runID.String(), pkg.node, pkg.time); err != nil {
			log.Fatal(err)
			return
		}
	}
	tx.Commit()
}

// OpenSQLiteDBOptimized establishes a database connection using WAL and
// exclusive locking.
func OpenSQLiteDBOptimized(path string) (*sql.DB, error) {
	return OpenSQLiteDB(path, "?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL")
}

// OpenSQLiteDB establishes a database connection using the given connection
// string.
func OpenSQLiteDB(path, connectionString string) (*sql.DB, error) {
	dsn := "file:%s%s"
	return sql.Open("sqlite3", fmt.Sprintf(dsn, path, connectionString))
}

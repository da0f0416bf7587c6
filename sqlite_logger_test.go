package contagiongo

import (
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
)

func TestSQLiteLogger_InitCreatesTables(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "run")
	l := NewSQLiteLogger(base, 2)
	if err := l.Init(); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "initializing a SQLiteLogger", err)
	}

	db, err := OpenSQLiteDBOptimized(l.trajectoryPath)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "opening the trajectory database", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("select count(*) from Trajectory002").Scan(&count); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "querying the freshly created Trajectory002 table", err)
	}
	if count != 0 {
		t.Errorf(UnequalIntParameterError, "row count in a freshly initialized table", 0, count)
	}
}

func TestSQLiteLogger_WriteTrajectory_InsertsRows(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "run")
	l := NewSQLiteLogger(base, 0)
	if err := l.Init(); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "initializing a SQLiteLogger", err)
	}
	tr := newTrajectory(0, 9, 1, 0)
	tr.appendSIR(1.0, 8, 2, 0)
	l.WriteTrajectory(TrajectoryPoints(ksuid.New(), 0, tr))

	db, err := OpenSQLiteDBOptimized(l.trajectoryPath)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "opening the trajectory database", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("select count(*) from Trajectory000").Scan(&count); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "querying row count after WriteTrajectory", err)
	}
	if count != 2 {
		t.Errorf(UnequalIntParameterError, "row count after writing a two-sample trajectory", 2, count)
	}
}

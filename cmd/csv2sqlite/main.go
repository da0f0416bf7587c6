// Command csv2sqlite merges the per-instance CSV output of contagion
// (trajectory/infection/recovery files) into a single SQLite database,
// adapted from the teacher's genotype-oriented csv2sqlite tool.
package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	var ind bool
	flag.BoolVar(&ind, "independent", false, "assumes multiple independent runs, one subdirectory per run")
	var endCommit bool
	flag.BoolVar(&endCommit, "commit_once", false, "commit once per directory instead of once per file")
	var outPath string
	flag.StringVar(&outPath, "out", "", "location to create the sqlite3 file (required)")
	var skipTrajectory bool
	flag.BoolVar(&skipTrajectory, "skip_traj", false, "skip Trajectory tables")
	var skipInfection bool
	flag.BoolVar(&skipInfection, "skip_inf", false, "skip Infection tables")
	var skipRecovery bool
	flag.BoolVar(&skipRecovery, "skip_rec", false, "skip Recovery tables")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("CSV basepath was not specified!")
		flag.Usage()
		return
	}
	if flag.NArg() > 1 && ind {
		fmt.Println("only one CSV basepath should be provided when using -independent")
		flag.Usage()
		return
	}
	if outPath == "" {
		fmt.Println("-out was not specified")
		return
	}

	var csvDirPaths []string
	if ind {
		baseDirPath := filepath.Clean(flag.Arg(0))
		basepaths, err := filepath.Glob(baseDirPath)
		if err != nil {
			panic(err)
		}
		for _, path := range basepaths {
			fi, err := os.Stat(path)
			if err != nil {
				panic(err)
			}
			if fi.IsDir() {
				csvDirPaths = append(csvDirPaths, path)
			}
		}
	} else {
		for c := 0; c < flag.NArg(); c++ {
			csvDirPaths = append(csvDirPaths, filepath.Clean(flag.Arg(c)))
		}
	}

	db, err := openSQLiteDBOptimized(outPath)
	if err != nil {
		panic(err)
	}

	tableNameMap := map[string]string{
		"traj": "Trajectory",
		"inf":  "Infection",
		"rec":  "Recovery",
	}
	columnNameMap := map[string]string{
		"traj": "(id integer not null primary key, run text, instance int, runID text, time real, s int, i int, r int)",
		"inf":  "(id integer not null primary key, run text, instance int, runID text, node int, time real)",
		"rec":  "(id integer not null primary key, run text, instance int, runID text, node int, time real)",
	}
	insertStmtMap := map[string]string{
		"traj": "insert into %s (run, runID, instance, time, s, i, r) values(?, ?, ?, ?, ?, ?, ?)",
		"inf":  "insert into %s (run, runID, instance, node, time) values(?, ?, ?, ?, ?)",
		"rec":  "insert into %s (run, runID, instance, node, time) values(?, ?, ?, ?, ?)",
	}

	fileCounter := 0
	startTime := time.Now()
	for c, csvDirPath := range csvDirPaths {
		globString := filepath.Join(csvDirPath, "*.csv")
		csvPaths, err := filepath.Glob(globString)
		if err != nil {
			panic(err)
		}
		if len(csvPaths) < 1 {
			log.Fatalf("%s did not return any matches", globString)
		}

		var tx *sql.Tx
		if endCommit {
			tx, err = db.Begin()
			if err != nil {
				panic(err)
			}
		}
		for _, csvPath := range csvPaths {
			f, err := os.Open(csvPath)
			if err != nil {
				panic(err)
			}

			_, csvFilename := filepath.Split(csvPath)
			parts := strings.Split(csvFilename, ".")
			contentType := parts[len(parts)-2]

			tableName, ok := tableNameMap[contentType]
			if !ok {
				f.Close()
				continue
			}
			columnNames := columnNameMap[contentType]
			insertStmt := fmt.Sprintf(insertStmtMap[contentType], tableName)

			switch {
			case tableName == "Trajectory" && skipTrajectory:
				f.Close()
				continue
			case tableName == "Infection" && skipInfection:
				f.Close()
				continue
			case tableName == "Recovery" && skipRecovery:
				f.Close()
				continue
			}

			scanner := bufio.NewScanner(f)
			splitter := regexp.MustCompile(`\s*,\s*`)

			if !endCommit {
				tx, err = db.Begin()
				if err != nil {
					panic(err)
				}
			}
			createStmt := fmt.Sprintf("create table if not exists %s %s;", tableName, columnNames)
			if _, err := tx.Exec(createStmt); err != nil {
				log.Fatalf("%q: %s", err, createStmt)
			}
			// the header row of each contagion CSV file is skipped; it
			// carries no data and the column layout is fixed by contentType.
			if scanner.Scan() {
				// header consumed
			}

			stmt, err := tx.Prepare(insertStmt)
			if err != nil {
				panic(err)
			}
			for scanner.Scan() {
				line := scanner.Text()
				stringValues := splitter.Split(line, -1)
				run := strconv.Itoa(c)
				values := make([]interface{}, 0, len(stringValues)+1)
				values = append(values, run)
				for _, v := range stringValues {
					values = append(values, v)
				}
				if _, err := stmt.Exec(values...); err != nil {
					panic(fmt.Sprintln(err, stringValues))
				}
				fileCounter++
			}
			stmt.Close()
			fmt.Print(csvFilename)
			if !endCommit {
				tx.Commit()
				fmt.Print(", committed.")
			}
			fmt.Print("\n")
			f.Close()
		}
		if endCommit {
			tx.Commit()
		}
	}
	elapsed := time.Since(startTime)

	db.Close()
	fmt.Println("Finished.")
	fmt.Printf("Processed %d rows in %v\n", fileCounter, elapsed)
}

func openSQLiteDBOptimized(path string) (*sql.DB, error) {
	return openSQLiteDB(path, "?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL")
}

func openSQLiteDB(path, connectionString string) (*sql.DB, error) {
	dsn := "file:%s%s"
	return sql.Open("sqlite3", fmt.Sprintf(dsn, path, connectionString))
}

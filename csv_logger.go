package contagiongo

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// CSVLogger is a TrajectoryLogger that writes simulation data as
// comma-delimited files, one triple of files (trajectory/infections/
// recoveries) per instance, following the teacher's CSVLogger.
type CSVLogger struct {
	trajectoryPath string
	infectionPath  string
	recoveryPath   string
}

// NewCSVLogger creates a new logger that writes data into CSV files.
func NewCSVLogger(basepath string, i int) *CSVLogger {
	l := new(CSVLogger)
	l.SetBasePath(basepath, i)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *CSVLogger) SetBasePath(basepath string, i int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += fmt.Sprintf("log")
	}
	l.trajectoryPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%03d.%s.csv", i, "traj")
	l.infectionPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%03d.%s.csv", i, "inf")
	l.recoveryPath = strings.TrimSuffix(basepath, ".") + fmt.Sprintf(".%03d.%s.csv", i, "rec")
}

// Init creates CSV files and writes header rows for each file.
func (l *CSVLogger) Init() error {
	newFile := func(path, header string) error {
		var b bytes.Buffer
		b.WriteString(header)
		return NewFile(path, b.Bytes())
	}
	if err := newFile(l.trajectoryPath, "runID,instance,time,s,i,r\n"); err != nil {
		return err
	}
	if err := newFile(l.infectionPath, "runID,instance,node,time\n"); err != nil {
		return err
	}
	if err := newFile(l.recoveryPath, "runID,instance,node,time\n"); err != nil {
		return err
	}
	return nil
}

// WriteTrajectory appends every compartment-count sample to the trajectory
// CSV file.
func (l *CSVLogger) WriteTrajectory(c <-chan TrajectoryPointPackage) {
	const template = "%s,%d,%g,%d,%d,%d\n"
	var b bytes.Buffer
	for pt := range c {
		b.WriteString(fmt.Sprintf(template, pt.runID.String(), pt.instanceID, pt.time, pt.s, pt.i, pt.r))
	}
	AppendToFile(l.trajectoryPath, b.Bytes())
}

// WriteInfections appends every infection event to the infections CSV file.
func (l *CSVLogger) WriteInfections(c <-chan InfectionPackage) {
	const template = "%s,%d,%d,%g\n"
	var b bytes.Buffer
	for pkg := range c {
		b.WriteString(fmt.Sprintf(template, pkg.runID.String(), pkg.instanceID, pkg.node, pkg.time))
	}
	AppendToFile(l.infectionPath, b.Bytes())
}

// WriteRecoveries appends every recovery event to the recoveries CSV file.
func (l *CSVLogger) WriteRecoveries(c <-chan RecoveryPackage) {
	const template = "%s,%d,%d,%g\n"
	var b bytes.Buffer
	for pkg := range c {
		b.WriteString(fmt.Sprintf(template, pkg.runID.String(), pkg.instanceID, pkg.node, pkg.time))
	}
	AppendToFile(l.recoveryPath, b.Bytes())
}

// NewFile creates a new file on the given path if it does not exist.
// Returns an error if the file exists.
func NewFile(path string, b []byte) error {
	if exists, _ := Exists(path); exists {
		return fmt.Errorf("%s already exists", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}

// AppendToFile creates a new file on the given path if it does not exist, or
// appends to the end of the existing file if the file exists.
func AppendToFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}

// Exists reports whether a file exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

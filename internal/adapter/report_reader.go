package adapter

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	m "jacov.dev/pkg/jacov/internal/model"
)

var errMissingAttribute = errors.New("missing attribute")

// ReportReader loads a coverage report into the per-file line hit model.
type ReportReader interface {
	Read(ctx context.Context, path m.Path) (m.Coverage, error)
}

// MalformedReportError reports a coverage document that could not be parsed
// or lacks a required attribute.
type MalformedReportError struct {
	Path   m.Path
	Reason string
	Err    error
}

func (e *MalformedReportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed coverage report %s: %s: %v", e.Path, e.Reason, e.Err)
	}

	return fmt.Sprintf("malformed coverage report %s: %s", e.Path, e.Reason)
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

// The JaCoCo XML layout: report -> group* -> package -> sourcefile -> line.
// Unknown elements and attributes are ignored by encoding/xml. Required
// attributes are pointers so a missing one can be told apart from an empty one.
type xmlReport struct {
	Groups   []xmlGroup   `xml:"group"`
	Packages []xmlPackage `xml:"package"`
}

type xmlGroup struct {
	Groups   []xmlGroup   `xml:"group"`
	Packages []xmlPackage `xml:"package"`
}

type xmlPackage struct {
	Name        *string         `xml:"name,attr"`
	SourceFiles []xmlSourceFile `xml:"sourcefile"`
}

type xmlSourceFile struct {
	Name  *string   `xml:"name,attr"`
	Lines []xmlLine `xml:"line"`
}

type xmlLine struct {
	Nr *string `xml:"nr,attr"`
	Ci *string `xml:"ci,attr"`
	Mb *string `xml:"mb,attr"`
	Cb *string `xml:"cb,attr"`
}

// JacocoReportReader parses JaCoCo XML reports.
//
// encoding/xml never loads or evaluates a DTD: the DOCTYPE JaCoCo writes is
// returned as a directive and skipped, so no external entity is fetched.
type JacocoReportReader struct{}

// NewJacocoReportReader constructs a JacocoReportReader.
func NewJacocoReportReader() *JacocoReportReader {
	return &JacocoReportReader{}
}

// Read parses the report at path.
func (r *JacocoReportReader) Read(ctx context.Context, path m.Path) (m.Coverage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - the report path is user configuration
	f, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open coverage report", "path", path, "error", err)
		return nil, fmt.Errorf("open coverage report: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	var doc xmlReport

	decoder := xml.NewDecoder(f)
	if err := decoder.Decode(&doc); err != nil {
		slog.Error("Failed to decode coverage report", "path", path, "error", err)
		return nil, &MalformedReportError{Path: path, Reason: "invalid xml", Err: err}
	}

	coverage := m.Coverage{}
	if err := collectPackages(path, coverage, doc.Packages); err != nil {
		return nil, err
	}

	if err := collectGroups(path, coverage, doc.Groups); err != nil {
		return nil, err
	}

	slog.Info("parsed coverage", "path", path, "files", len(coverage))

	return coverage, nil
}

func collectGroups(path m.Path, coverage m.Coverage, groups []xmlGroup) error {
	for _, group := range groups {
		if err := collectPackages(path, coverage, group.Packages); err != nil {
			return err
		}

		if err := collectGroups(path, coverage, group.Groups); err != nil {
			return err
		}
	}

	return nil
}

func collectPackages(path m.Path, coverage m.Coverage, packages []xmlPackage) error {
	for _, pkg := range packages {
		if pkg.Name == nil {
			return &MalformedReportError{Path: path, Reason: "package without name attribute"}
		}

		for _, sf := range pkg.SourceFiles {
			if sf.Name == nil {
				return &MalformedReportError{Path: path, Reason: fmt.Sprintf("sourcefile without name attribute in package %q", *pkg.Name)}
			}

			key := m.CoverageKey{Package: *pkg.Name, File: *sf.Name}

			fileCoverage, ok := coverage[key]
			if !ok {
				fileCoverage = m.NewFileCoverage()
				coverage[key] = fileCoverage
			}

			if err := collectLines(path, key, fileCoverage, sf.Lines); err != nil {
				return err
			}
		}
	}

	return nil
}

func collectLines(path m.Path, key m.CoverageKey, fileCoverage *m.FileCoverage, lines []xmlLine) error {
	for _, line := range lines {
		nr, err := requiredInt(line.Nr)
		if err != nil {
			return &MalformedReportError{Path: path, Reason: fmt.Sprintf("line nr in %s", key.Path()), Err: err}
		}

		ci, err := requiredInt(line.Ci)
		if err != nil {
			return &MalformedReportError{Path: path, Reason: fmt.Sprintf("line %d ci in %s", nr, key.Path()), Err: err}
		}

		mb, err := optionalInt(line.Mb)
		if err != nil {
			return &MalformedReportError{Path: path, Reason: fmt.Sprintf("line %d mb in %s", nr, key.Path()), Err: err}
		}

		cb, err := optionalInt(line.Cb)
		if err != nil {
			return &MalformedReportError{Path: path, Reason: fmt.Sprintf("line %d cb in %s", nr, key.Path()), Err: err}
		}

		index := nr - 1

		// JaCoCo counts covered instructions, not hits.
		if ci > 0 {
			fileCoverage.Lines[index] = 1
		} else {
			fileCoverage.Lines[index] = 0
		}

		if mb+cb > 0 {
			fileCoverage.Branches[index] = m.BranchCounts{Covered: cb, Missed: mb}
		}
	}

	return nil
}

func requiredInt(value *string) (int, error) {
	if value == nil {
		return 0, errMissingAttribute
	}

	return strconv.Atoi(*value)
}

func optionalInt(value *string) (int, error) {
	if value == nil {
		return 0, nil
	}

	return strconv.Atoi(*value)
}

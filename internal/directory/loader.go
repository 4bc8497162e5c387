package directory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"doctorai/internal/observability"
	"doctorai/pkg"
)

// Loader reads the doctor registry from a delimited file with a header of
// name, specialization, latitude, longitude, hospital_name. Every Load
// re-reads the file; callers that want caching do it themselves.
type Loader struct {
	Path    string
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// NewLoader constructs a Loader. logger may be nil; slog.Default is used.
func NewLoader(path string, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Path: path, Logger: logger, Metrics: metrics}
}

// Load parses the registry. A row that fails to parse is logged and
// dropped; only opening or reading the file itself is fatal.
func (l *Loader) Load(ctx context.Context) ([]pkg.Doctor, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open doctor registry: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read registry header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		// Exports tend to carry a BOM on the first column name.
		name = strings.TrimSpace(strings.ReplaceAll(name, "\uFEFF", ""))
		cols[name] = i
	}

	var doctors []pkg.Doctor
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Logger.Warn("invalid registry row", "line", line, "error", err)
			l.Metrics.ObserveDirectoryRow(false)
			continue
		}
		doc, err := parseRow(cols, record)
		if err != nil {
			l.Logger.Warn("invalid registry row", "line", line, "error", err)
			l.Metrics.ObserveDirectoryRow(false)
			continue
		}
		l.Metrics.ObserveDirectoryRow(true)
		doctors = append(doctors, doc)
	}
	return doctors, nil
}

func parseRow(cols map[string]int, record []string) (pkg.Doctor, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return pkg.Doctor{}, fmt.Errorf("missing name")
	}
	lat, err := strconv.ParseFloat(field("latitude"), 64)
	if err != nil {
		return pkg.Doctor{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(field("longitude"), 64)
	if err != nil {
		return pkg.Doctor{}, fmt.Errorf("longitude: %w", err)
	}
	hospital := field("hospital_name")
	if hospital == "" {
		hospital = "N/A"
	}
	return pkg.Doctor{
		Name:           name,
		Specialization: field("specialization"),
		Latitude:       lat,
		Longitude:      lng,
		Hospital:       hospital,
	}, nil
}

package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/avelsher/armory/internal/armory"
)

// fieldSeparator is the delimiter of the catalog file format. Descriptions
// routinely contain commas, so the format uses a caret instead.
const fieldSeparator = "^"

// LoadFile reads an armor catalog from a caret-delimited text file: one
// header line, then one record per line as description^cost^defense.
// Individually malformed records are skipped and logged rather than failing
// the load; only an unreadable file is an error.
func LoadFile(path string, logger *zap.Logger) (armory.Items, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	items := armory.Items{}
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			// header row
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := parseRecord(line)
		if err != nil {
			logger.Warn("skipping malformed catalog record",
				zap.Int("line", lineNumber),
				zap.Error(err),
			)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return items, nil
}

func parseRecord(line string) (*armory.Item, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return nil, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("parse cost: %w", err)
	}
	defense, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("parse defense: %w", err)
	}

	return armory.NewItem(strings.TrimSpace(fields[0]), cost, defense)
}

package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
	FormatCSV   InputFormat = "csv"
)

// DetectFormat - формат по расширению файла; по умолчанию JSON.
func DetectFormat(filePath string) InputFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".jsonl":
		return FormatJSONL
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}

// ValidateFile - проверяет файл (JSON, JSONL или CSV), валидные записи пишет в ow, отказы - в ew.
// Возвращает сводку вида "N valid / M invalid".
func ValidateFile(ctx context.Context, vs *Validators, target Target, filePath string, format InputFormat, ow, ew io.Writer) (string, error) {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, vs, target, file, format, ow, ew)
}

// ValidateReader - то же для произвольного источника (stdin); FormatAuto здесь означает JSONL.
func ValidateReader(ctx context.Context, vs *Validators, target Target, ir io.Reader, format InputFormat, ow, ew io.Writer) (string, error) {
	var (
		res StreamResult
		err error
	)

	switch format {
	case FormatJSON:
		raw, readErr := io.ReadAll(ir)
		if readErr != nil {
			return "", fmt.Errorf("read file: %w", readErr)
		}
		record, vErr := ValidateRecordFromJSON(ctx, vs, target, raw)
		if vErr != nil {
			reportRejected(ew, 1, vErr)
			return summary(StreamResult{InvalidLinesCount: 1}), vErr
		}
		if err := writeRecord(ow, record); err != nil {
			return "", err
		}
		return summary(StreamResult{ValidLinesCount: 1}), nil

	case FormatJSONL, FormatAuto:
		res, err = ValidateJSONLStream(ctx, vs, target, ir, ow, ew)
	case FormatCSV:
		res, err = ValidateCSVStream(ctx, vs, target, ir, ow, ew)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return summary(res), err
	}
	return summary(res), nil
}

func summary(res StreamResult) string {
	return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
}

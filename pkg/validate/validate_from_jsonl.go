package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// StreamResult - статистика пакетной проверки.
type StreamResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream - читает JSONL, проверяет каждую строку; валидные записи пишет в ow
// каноническим JSON (одна строка на запись), причины отказа - в ew (если не nil).
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, vs *Validators, target Target, ir io.Reader, ow, ew io.Writer) (StreamResult, error) {
	var res StreamResult

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		record, err := ValidateRecordFromJSON(ctx, vs, target, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			reportRejected(ew, lineNo, err)
			continue
		}

		if err := writeRecord(ow, record); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeRecord(ow io.Writer, record any) error {
	marshal, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := ow.Write(append(marshal, '\n')); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}

func reportRejected(ew io.Writer, lineNo int, err error) {
	if ew == nil {
		return
	}
	_, _ = fmt.Fprintf(ew, "line %d: %v\n", lineNo, err)
}

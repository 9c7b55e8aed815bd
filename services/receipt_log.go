package services

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ReceiptLogFile is created in the working directory on first append.
const ReceiptLogFile = "order_receipts.txt"

// AppendReceiptLog appends one receipt block to the log file: rule line,
// generation timestamp, body, rule line, blank line. Append-only; a
// failed write never touches previously written content. Failures are
// the caller's problem to report and never roll back the order.
func AppendReceiptLog(path string, body string, at time.Time) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open receipt log: %w", err)
	}
	defer f.Close()

	rule := strings.Repeat("=", 72)
	block := fmt.Sprintf("%s\nGenerated: %s\n%s\n%s\n\n",
		rule, at.Format(ReceiptDateFormat), body, rule)
	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("write receipt log: %w", err)
	}
	return nil
}

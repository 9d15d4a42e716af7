// internal/output/summary.go
package output

import (
	"fmt"
	"os"

	"dnadotplot/internal/encodeutil"
	"dnadotplot/pkg/api"
)

// WriteSummary writes s to path as JSON, or YAML for .yaml/.yml paths.
func WriteSummary(path string, s api.SummaryV1) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("summary: %w", cerr)
		}
	}()
	if err := encodeutil.Encode(fh, encodeutil.FormatForPath(path), s); err != nil {
		return fmt.Errorf("summary %s: %w", path, err)
	}
	return nil
}

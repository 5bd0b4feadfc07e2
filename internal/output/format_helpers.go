package output

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration in seconds with seven decimals.
func FormatElapsed(d time.Duration) string { return fmt.Sprintf("%.7f seconds", d.Seconds()) }

package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderCodeSuffixLen = 4

// GenerateOrderCode returns a human-readable order code of the form
// ORD-<unix millis>-<4 uppercase base36 chars>. The suffix is drawn from a
// random UUID so codes created within the same millisecond differ.
func GenerateOrderCode(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randomBase36(orderCodeSuffixLen))
}

func randomBase36(n int) string {
	id := uuid.New()

	var sb strings.Builder
	for i := 0; sb.Len() < n && i < len(id); i++ {
		sb.WriteString(strings.ToUpper(strconv.FormatUint(uint64(id[i]%36), 36)))
	}
	return sb.String()
}

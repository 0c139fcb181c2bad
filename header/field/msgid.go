package field

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// makeMessageID produces an RFC 5322 msg-id of the form
// <timestamp.uuid[.idstring]@host>. The timestamp and UUID together keep ids
// unique across processes and restarts; the host is this machine's
// hostname, falling back to "localhost" when it cannot be determined.
func makeMessageID(idstring string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	parts := []string{
		strconv.FormatInt(time.Now().UnixNano(), 10),
		uuid.NewString(),
	}
	if idstring != "" {
		parts = append(parts, idstring)
	}

	return fmt.Sprintf("<%s@%s>", strings.Join(parts, "."), host)
}

package assert

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails t if the documents differ in content. Member order and
// whitespace are ignored; numbers are compared by their literal text.
func JSONEqual(t testing.TB, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(jsonValue(t, expected), jsonValue(t, actual)); diff != "" {
		t.Errorf("documents differ (-expected +actual):\n%s", diff)
	}
}

func jsonValue(t testing.TB, input string) any {
	t.Helper()
	var v any
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("invalid JSON %q: %v", input, err)
	}
	return v
}

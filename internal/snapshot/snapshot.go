package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerhands/internal/util"
)

// ValidateSnapshot compares obj, as indented JSON, with testdata/<name>.json
// The file is written instead when it does not exist or UPDATE_SNAPSHOTS is set.
func ValidateSnapshot(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := filepath.Join("testdata", name+".json")
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil || util.Getenv("UPDATE_SNAPSHOTS", "") != "" {
		if err != nil && !os.IsNotExist(err) {
			t.Fatal(err)
		}

		create(t, filename, objJSON)
		return
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(t *testing.T, filename string, objJSON []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.WriteFile(filename, append(objJSON, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}

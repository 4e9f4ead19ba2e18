package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	conversion "auction-loader/internal/conversionService"
	"auction-loader/internal/output"
	"auction-loader/internal/repository"
	"auction-loader/services/convert/handler"

	"github.com/stretchr/testify/require"
)

// testdataPath returns the path of a fixture file
func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

// SetupTestHandler wires a handler with a fresh registry and a .dat sink writing to folder.
// A non-empty sqlitePath adds the SQLite sink.
func SetupTestHandler(folder, sqlitePath string, policy repository.ConflictPolicy) *handler.ConvertHandler {
	sinks := []output.Sink{output.NewDatSink(folder)}
	if sqlitePath != "" {
		sinks = append(sinks, output.NewSQLiteSink(sqlitePath))
	}
	batch := conversion.NewBatch(repository.NewMemoryRegistry(policy))
	return handler.NewConvertHandler(batch, sinks...)
}

// ReadOutput returns the content of one .dat file in folder
func ReadOutput(t *testing.T, folder, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(folder, name))
	require.NoError(t, err)
	return string(b)
}

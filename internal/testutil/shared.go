//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// MongoDB caps database names at 63 bytes.
const maxDatabaseName = 63

var (
	shared    *MongoDBContainer
	sharedErr error
	sharedMu  sync.Mutex

	databaseSeq atomic.Int64
)

// RunWithSharedMongoDB starts one MongoDB container for the package, runs the tests
// and terminates it. Use it as the body of TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(m))
//	}
func RunWithSharedMongoDB(m *testing.M) int {
	ctx := context.Background()

	sharedMu.Lock()
	shared, sharedErr = SetupMongoDB(ctx)
	sharedMu.Unlock()
	if sharedErr != nil {
		fmt.Fprintf(os.Stderr, "shared mongodb: %v\n", sharedErr)
		return 1
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := shared.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "shared mongodb cleanup: %v\n", err)
	}
	shared = nil
	return code
}

// SharedMongoURI returns the URI of the package's shared container.
// It fails the test when RunWithSharedMongoDB did not start one.
func SharedMongoURI(t testing.TB) string {
	t.Helper()
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		t.Fatal("shared mongodb is not running; call testutil.RunWithSharedMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName returns a database name unique to the test, so tests sharing a
// container never see each other's receptions or partitions.
func DatabaseName(t testing.TB) string {
	suffix := fmt.Sprintf("_%d", databaseSeq.Add(1))
	name := strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_").Replace(t.Name())
	name = "pallets_" + name
	if len(name)+len(suffix) > maxDatabaseName {
		name = name[:maxDatabaseName-len(suffix)]
	}
	return name + suffix
}

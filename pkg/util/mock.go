package util

import "github.com/influxdata/influxdb-client-go/api/write"

// MockWriteAPI is a no-op influx writer, used when no metrics backend is
// configured.
type MockWriteAPI struct{}

// WriteRecord writes asynchronously line protocol record into bucket.
func (m *MockWriteAPI) WriteRecord(line string) {}

// WritePoint writes asynchronously Point into bucket.
func (m *MockWriteAPI) WritePoint(point *write.Point) {}

// Flush forces all pending writes from the buffer to be sent
func (m *MockWriteAPI) Flush() {}

// Flushes all pending writes and stop async processes. After this the Write client cannot be used
func (m *MockWriteAPI) Close() {}

// Errors returns a channel for reading errors which occurs during async writes.
func (m *MockWriteAPI) Errors() <-chan error { return nil }

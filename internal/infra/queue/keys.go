package queue

import "strconv"

// keyspace builds every Redis key for one queue: {prefix}:{queue}:...
type keyspace struct {
	base string
}

func newKeyspace(prefix string, name Name) keyspace {
	return keyspace{base: prefix + ":" + string(name) + ":"}
}

func (k keyspace) counter() string   { return k.base + "id" }
func (k keyspace) wait() string      { return k.base + "wait" }
func (k keyspace) active() string    { return k.base + "active" }
func (k keyspace) delayed() string   { return k.base + "delayed" }
func (k keyspace) completed() string { return k.base + "completed" }
func (k keyspace) failed() string    { return k.base + "failed" }

func (k keyspace) message(id string) string { return k.base + "msg:" + id }

func formatID(n int64) string { return strconv.FormatInt(n, 10) }

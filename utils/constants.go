// File: utils/constants.go
package utils

// ScheduleCachePrefix is the prefix for cached availability snapshots.
const ScheduleCachePrefix = "sched:"

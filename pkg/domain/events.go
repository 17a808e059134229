package domain

// OrbitEvent is emitted when the sieve opens a new orbit.
type OrbitEvent struct {
	Seed   Key
	Index  int
	Linked []Key
	Zero   bool
}

// ClassifyEvent is emitted when an entry is written or overwritten.
type ClassifyEvent struct {
	Entry     Entry
	Previous  Entry
	Overwrite bool
}

// SieveHooks defines callbacks for sieve observability. Nil hooks are skipped.
type SieveHooks struct {
	OnOrbitStart func(*OrbitEvent)
	OnClassify   func(*ClassifyEvent)
}

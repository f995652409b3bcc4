package stats

// ProfileInfo is the execution profile sent by the server once the query is done
type ProfileInfo struct {
	Rows   uint64
	Blocks uint64
	Bytes  uint64

	AppliedLimit              bool
	RowsBeforeLimit           uint64
	CalculatedRowsBeforeLimit bool
}

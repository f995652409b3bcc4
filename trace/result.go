package trace

import (
	"context"

	"github.com/nitoqq/clickhouse-driver/packet"
)

type (
	// Result specified trace of result strategies activity.
	// Nil hooks are skipped.
	Result struct {
		OnNew        func(ResultNewInfo)
		OnNextPacket func(ResultNextPacketStartInfo) func(ResultNextPacketDoneInfo)
		OnGetResult  func(ResultGetResultStartInfo) func(ResultGetResultDoneInfo)
		OnProgress   func(ResultProgressInfo)
		OnNextChunk  func(ResultNextChunkStartInfo) func(ResultNextChunkDoneInfo)
		OnClose      func(ResultCloseStartInfo) func(ResultCloseDoneInfo)
	}
	ResultNewInfo struct {
		QueryID string
		// Mode is one of "materialized", "progress" or "iter"
		Mode            string
		WithColumnTypes bool
		Columnar        bool
	}
	ResultNextPacketStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		QueryID string
	}
	ResultNextPacketDoneInfo struct {
		Kind  packet.Kind
		Error error
	}
	ResultGetResultStartInfo struct {
		Context *context.Context
		QueryID string
	}
	ResultGetResultDoneInfo struct {
		Rows  int
		Error error
	}
	ResultProgressInfo struct {
		Context   *context.Context
		QueryID   string
		Rows      uint64
		TotalRows uint64
	}
	ResultNextChunkStartInfo struct {
		Context *context.Context
		QueryID string
	}
	ResultNextChunkDoneInfo struct {
		Rows            int
		WithColumnTypes bool
		Error           error
	}
	ResultCloseStartInfo struct {
		Context *context.Context
		QueryID string
	}
	ResultCloseDoneInfo struct {
		Error error
	}
)

// Compose returns a new Result which has functional fields composed both from t and x.
// Hooks of t are called before hooks of x.
func (t *Result) Compose(x *Result) *Result {
	var ret Result
	if t == nil {
		t = &Result{}
	}
	if x == nil {
		x = &Result{}
	}
	{
		h1 := t.OnNew
		h2 := x.OnNew
		ret.OnNew = func(info ResultNewInfo) {
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnNextPacket
		h2 := x.OnNextPacket
		ret.OnNextPacket = func(info ResultNextPacketStartInfo) func(ResultNextPacketDoneInfo) {
			var r1, r2 func(ResultNextPacketDoneInfo)
			if h1 != nil {
				r1 = h1(info)
			}
			if h2 != nil {
				r2 = h2(info)
			}

			return func(info ResultNextPacketDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}
	{
		h1 := t.OnGetResult
		h2 := x.OnGetResult
		ret.OnGetResult = func(info ResultGetResultStartInfo) func(ResultGetResultDoneInfo) {
			var r1, r2 func(ResultGetResultDoneInfo)
			if h1 != nil {
				r1 = h1(info)
			}
			if h2 != nil {
				r2 = h2(info)
			}

			return func(info ResultGetResultDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}
	{
		h1 := t.OnProgress
		h2 := x.OnProgress
		ret.OnProgress = func(info ResultProgressInfo) {
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnNextChunk
		h2 := x.OnNextChunk
		ret.OnNextChunk = func(info ResultNextChunkStartInfo) func(ResultNextChunkDoneInfo) {
			var r1, r2 func(ResultNextChunkDoneInfo)
			if h1 != nil {
				r1 = h1(info)
			}
			if h2 != nil {
				r2 = h2(info)
			}

			return func(info ResultNextChunkDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}
	{
		h1 := t.OnClose
		h2 := x.OnClose
		ret.OnClose = func(info ResultCloseStartInfo) func(ResultCloseDoneInfo) {
			var r1, r2 func(ResultCloseDoneInfo)
			if h1 != nil {
				r1 = h1(info)
			}
			if h2 != nil {
				r2 = h2(info)
			}

			return func(info ResultCloseDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}

	return &ret
}

func (t *Result) onNew(info ResultNewInfo) {
	if t == nil || t.OnNew == nil {
		return
	}
	t.OnNew(info)
}

func (t *Result) onNextPacket(info ResultNextPacketStartInfo) func(ResultNextPacketDoneInfo) {
	if t == nil || t.OnNextPacket == nil {
		return func(ResultNextPacketDoneInfo) {}
	}
	res := t.OnNextPacket(info)
	if res == nil {
		return func(ResultNextPacketDoneInfo) {}
	}

	return res
}

func (t *Result) onGetResult(info ResultGetResultStartInfo) func(ResultGetResultDoneInfo) {
	if t == nil || t.OnGetResult == nil {
		return func(ResultGetResultDoneInfo) {}
	}
	res := t.OnGetResult(info)
	if res == nil {
		return func(ResultGetResultDoneInfo) {}
	}

	return res
}

func (t *Result) onProgress(info ResultProgressInfo) {
	if t == nil || t.OnProgress == nil {
		return
	}
	t.OnProgress(info)
}

func (t *Result) onNextChunk(info ResultNextChunkStartInfo) func(ResultNextChunkDoneInfo) {
	if t == nil || t.OnNextChunk == nil {
		return func(ResultNextChunkDoneInfo) {}
	}
	res := t.OnNextChunk(info)
	if res == nil {
		return func(ResultNextChunkDoneInfo) {}
	}

	return res
}

func (t *Result) onClose(info ResultCloseStartInfo) func(ResultCloseDoneInfo) {
	if t == nil || t.OnClose == nil {
		return func(ResultCloseDoneInfo) {}
	}
	res := t.OnClose(info)
	if res == nil {
		return func(ResultCloseDoneInfo) {}
	}

	return res
}

func ResultOnNew(t *Result, queryID, mode string, withColumnTypes, columnar bool) {
	t.onNew(ResultNewInfo{
		QueryID:         queryID,
		Mode:            mode,
		WithColumnTypes: withColumnTypes,
		Columnar:        columnar,
	})
}

func ResultOnNextPacket(t *Result, c *context.Context, queryID string) func(kind packet.Kind, _ error) {
	res := t.onNextPacket(ResultNextPacketStartInfo{
		Context: c,
		QueryID: queryID,
	})

	return func(kind packet.Kind, e error) {
		res(ResultNextPacketDoneInfo{
			Kind:  kind,
			Error: e,
		})
	}
}

func ResultOnGetResult(t *Result, c *context.Context, queryID string) func(rows int, _ error) {
	res := t.onGetResult(ResultGetResultStartInfo{
		Context: c,
		QueryID: queryID,
	})

	return func(rows int, e error) {
		res(ResultGetResultDoneInfo{
			Rows:  rows,
			Error: e,
		})
	}
}

func ResultOnProgress(t *Result, c *context.Context, queryID string, rows, totalRows uint64) {
	t.onProgress(ResultProgressInfo{
		Context:   c,
		QueryID:   queryID,
		Rows:      rows,
		TotalRows: totalRows,
	})
}

func ResultOnNextChunk(t *Result, c *context.Context, queryID string) func(rows int, withColumnTypes bool, _ error) {
	res := t.onNextChunk(ResultNextChunkStartInfo{
		Context: c,
		QueryID: queryID,
	})

	return func(rows int, withColumnTypes bool, e error) {
		res(ResultNextChunkDoneInfo{
			Rows:            rows,
			WithColumnTypes: withColumnTypes,
			Error:           e,
		})
	}
}

func ResultOnClose(t *Result, c *context.Context, queryID string) func(error) {
	res := t.onClose(ResultCloseStartInfo{
		Context: c,
		QueryID: queryID,
	})

	return func(e error) {
		res(ResultCloseDoneInfo{
			Error: e,
		})
	}
}

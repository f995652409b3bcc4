package stack

import (
	"runtime"
	"strconv"
	"strings"
)

type recordOptions struct {
	packagePath  bool
	functionName bool
	fileName     bool
	line         bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record returns the caller identity as `pkg/path/pkg.Func(file.go:line)`.
// Depth 0 means the direct caller of Record.
func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		functionName: true,
		fileName:     true,
		line:         true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	var name string
	if fn := runtime.FuncForPC(c.function); fn != nil {
		name = strings.ReplaceAll(fn.Name(), "[...]", "")
	}
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	var b strings.Builder
	if options.functionName {
		if !options.packagePath {
			if i := strings.LastIndex(name, "/"); i > -1 {
				name = name[i+1:]
			}
		}
		b.WriteString(name)
	}
	if options.fileName {
		closeBrace := b.Len() > 0
		if closeBrace {
			b.WriteByte('(')
		}
		b.WriteString(file)
		if options.line {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c.line))
		}
		if closeBrace {
			b.WriteByte(')')
		}
	}

	return b.String()
}

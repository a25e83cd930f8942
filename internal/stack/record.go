package stack

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Record identifies the caller depth frames up the stack as
// "package.Function(file.go:line)".
func Record(depth int) string {
	function, file, line, _ := runtime.Caller(depth + 1)

	name := runtime.FuncForPC(function).Name()
	if i := strings.LastIndex(name, "/"); i > -1 {
		name = name[i+1:]
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(path.Base(file))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(line))
	sb.WriteByte(')')

	return sb.String()
}

package gtype

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	argsBlockToken = iota
)

var (
	argsBlockMatcher = parsly.NewToken(argsBlockToken, "< .... >", matcher.NewBlock('<', '>', '\\'))
)

package server

import (
	"github.com/joynutrics/json-assertions/jsonvalue"
)

type compareRequest struct {
	expected   string
	actual     string
	selectPath string
}

func parseCompareRequest(body []byte, maxDepth int) (compareRequest, error) {
	var ret compareRequest
	v, err := jsonvalue.ParseWithOptions(string(body), jsonvalue.ParseOptions{MaxDepth: maxDepth})
	if err != nil {
		return ret, errRequestNotJSON(err)
	}
	if v.Kind() != jsonvalue.ObjectKind {
		return ret, errRequestNotObject
	}
	if ret.expected, err = requiredString(v, "expected"); err != nil {
		return ret, err
	}
	if ret.actual, err = requiredString(v, "actual"); err != nil {
		return ret, err
	}
	if s, ok := v.Get("select"); ok && !s.IsNull() {
		if s.Kind() != jsonvalue.StringKind {
			return ret, errRequestFieldNotString("select")
		}
		ret.selectPath = s.StringValue()
	}
	return ret, nil
}

func requiredString(obj jsonvalue.Value, name string) (string, error) {
	v, ok := obj.Get(name)
	if !ok {
		return "", errMissingRequestField(name)
	}
	if v.Kind() != jsonvalue.StringKind {
		return "", errRequestFieldNotString(name)
	}
	return v.StringValue(), nil
}

package api

import (
	"sort"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"google.golang.org/protobuf/types/known/structpb"
)

// Message field names
const (
	FieldCase    = "case"
	FieldInput   = "input"
	FieldInputs  = "inputs"
	FieldOutput  = "output"
	FieldName    = "name"
	FieldExample = "example"
	FieldError   = "error"
	FieldCode    = "code"
)

// CaseEntry is one element of a ListCases response
type CaseEntry struct {
	Name    string
	Example string
}

// NewConvertRequest builds a Convert or ConvertStream request
func NewConvertRequest(caseName, input string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldCase:  structpb.NewStringValue(caseName),
		FieldInput: structpb.NewStringValue(input),
	}}
}

// ParseConvertRequest reads a Convert request. Missing fields read as ""
func ParseConvertRequest(req *structpb.Struct) (caseName, input string, err error) {
	if caseName, err = stringField(req, FieldCase); err != nil {
		return "", "", err
	}
	if input, err = stringField(req, FieldInput); err != nil {
		return "", "", err
	}
	return caseName, input, nil
}

// NewBatchRequest builds a ConvertBatch request
func NewBatchRequest(caseName string, inputs []string) *structpb.Struct {
	values := make([]*structpb.Value, len(inputs))
	for i, input := range inputs {
		values[i] = structpb.NewStringValue(input)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldCase:   structpb.NewStringValue(caseName),
		FieldInputs: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// ParseBatchRequest reads a ConvertBatch request
func ParseBatchRequest(req *structpb.Struct) (caseName string, inputs []string, err error) {
	if caseName, err = stringField(req, FieldCase); err != nil {
		return "", nil, err
	}

	value, ok := req.GetFields()[FieldInputs]
	if !ok {
		return caseName, nil, nil
	}
	list, ok := value.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return "", nil, invalidField(FieldInputs, "a list")
	}

	inputs, err = StringList(list.ListValue)
	if err != nil {
		return "", nil, err
	}
	return caseName, inputs, nil
}

// StringList reads a list of strings
func StringList(list *structpb.ListValue) ([]string, error) {
	out := make([]string, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, tberror.Newf("element %d is not a string", i).
				WithCode(tberror.CodeInvalidInput).
				WithDetail("index", i)
		}
		out[i] = s.StringValue
	}
	return out, nil
}

// NewStringList builds a list of strings
func NewStringList(values []string) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, len(values))}
	for i, v := range values {
		list.Values[i] = structpb.NewStringValue(v)
	}
	return list
}

// NewStringMap builds a struct of string fields
func NewStringMap(m map[string]string) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(m))}
	for k, v := range m {
		out.Fields[k] = structpb.NewStringValue(v)
	}
	return out
}

// StringMap reads a struct of string fields
func StringMap(s *structpb.Struct) (map[string]string, error) {
	out := make(map[string]string, len(s.GetFields()))
	for k := range s.GetFields() {
		v, err := stringField(s, k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// NewCaseList builds a ListCases response
func NewCaseList(entries []CaseEntry) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, len(entries))}
	for i, e := range entries {
		list.Values[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			FieldName:    structpb.NewStringValue(e.Name),
			FieldExample: structpb.NewStringValue(e.Example),
		}})
	}
	return list
}

// ParseCaseList reads a ListCases response, sorted by name
func ParseCaseList(list *structpb.ListValue) ([]CaseEntry, error) {
	entries := make([]CaseEntry, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, tberror.Newf("element %d is not a struct", i).
				WithCode(tberror.CodeInvalidInput).
				WithDetail("index", i)
		}
		name, err := stringField(s.StructValue, FieldName)
		if err != nil {
			return nil, err
		}
		example, err := stringField(s.StructValue, FieldExample)
		if err != nil {
			return nil, err
		}
		entries = append(entries, CaseEntry{Name: name, Example: example})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// StreamResult is one successful ConvertStream conversion
type StreamResult struct {
	Case   string
	Input  string
	Output string
}

// NewStreamResult builds a successful ConvertStream response
func NewStreamResult(r StreamResult) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldCase:   structpb.NewStringValue(r.Case),
		FieldInput:  structpb.NewStringValue(r.Input),
		FieldOutput: structpb.NewStringValue(r.Output),
	}}
}

// NewStreamError builds a failed ConvertStream response. The stream stays
// open after an error response
func NewStreamError(err error) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldError: structpb.NewStringValue(err.Error()),
		FieldCode:  structpb.NewStringValue(tberror.GetCode(err).String()),
	}}
}

// ParseStreamResponse reads a ConvertStream response. An error response is
// returned as a *tberror.Error carrying the remote code
func ParseStreamResponse(resp *structpb.Struct) (StreamResult, error) {
	if msg, ok := resp.GetFields()[FieldError]; ok {
		code, _ := stringField(resp, FieldCode)
		return StreamResult{}, tberror.New(msg.GetStringValue()).
			WithCode(tberror.ParseCode(code)).
			WithOperation("api.ParseStreamResponse")
	}

	var (
		r   StreamResult
		err error
	)
	if r.Case, err = stringField(resp, FieldCase); err != nil {
		return StreamResult{}, err
	}
	if r.Input, err = stringField(resp, FieldInput); err != nil {
		return StreamResult{}, err
	}
	if r.Output, err = stringField(resp, FieldOutput); err != nil {
		return StreamResult{}, err
	}
	return r, nil
}

func stringField(s *structpb.Struct, name string) (string, error) {
	value, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	str, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", invalidField(name, "a string")
	}
	return str.StringValue, nil
}

func invalidField(name, want string) *tberror.Error {
	return tberror.Newf("field %q must be %s", name, want).
		WithCode(tberror.CodeInvalidInput).
		WithDetail("field", name)
}

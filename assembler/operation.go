package assembler

import (
	"errors"
	"strings"

	"github.com/erraggy/oasir/internal/issues"
	"github.com/erraggy/oasir/internal/naming"
	"github.com/erraggy/oasir/internal/severity"
	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// Feature names used in the UnsupportedError values that drop operations.
const (
	featureMethod    = "method"
	featureMetadata  = "incomplete operation"
	featureParameter = "parameter"
	featureBody      = "request body"
	featureResponse  = "response"
)

// errRegistryNotBuilt is returned when operations are built before the
// component registry.
var errRegistryNotBuilt = errors.New("assembler: component registry must be built before operations")

// BuildOperation builds the operation at paths[endpoint][method]. GET and
// POST are modeled; every other method, and any GET or POST missing
// operationId, summary, responses or tags, yields an
// *oaserrors.UnsupportedError so the caller can skip it.
func (a *Assembler) BuildOperation(doc *parser.Map, reg *ir.Registry, endpoint, method string) (ir.Operation, error) {
	if reg == nil {
		return ir.Operation{}, errRegistryNotBuilt
	}
	itemPath := issues.FormatPath("paths", endpoint)
	path := issues.FormatPath("paths", endpoint, method)

	var m ir.Method
	switch method {
	case "get":
		m = ir.MethodGet
	case "post":
		m = ir.MethodPost
	default:
		return ir.Operation{}, &oaserrors.UnsupportedError{
			Path:    path,
			Feature: featureMethod,
			Detail:  strings.ToUpper(method) + " operations are not modeled",
		}
	}

	item, ok := doc.Lookup("paths", endpoint)
	if !ok {
		return ir.Operation{}, &oaserrors.SchemaError{Path: itemPath, Message: "path item must be a mapping"}
	}
	rawOp, _ := item.Get(method)
	op, ok := rawOp.(*parser.Map)
	if !ok {
		return ir.Operation{}, &oaserrors.SchemaError{Path: path, Shape: parser.Describe(rawOp), Message: "operation must be a mapping"}
	}

	if missing := missingMetadata(op); len(missing) > 0 {
		return ir.Operation{}, &oaserrors.UnsupportedError{
			Path:    path,
			Feature: featureMetadata,
			Detail:  "missing " + strings.Join(missing, ", "),
		}
	}

	args, err := a.parameters(doc, item, op, itemPath, path)
	if err != nil {
		return ir.Operation{}, err
	}

	var body *ir.RequestBody
	if rawBody, has := op.Get("requestBody"); has {
		bpath := join(path, "requestBody")
		if m == ir.MethodGet {
			a.log.Debug("ignoring request body on GET operation", "path", bpath)
		} else {
			resolved, err := resolveLocal(doc, rawBody, "requestBodies", bpath)
			if err != nil {
				return ir.Operation{}, err
			}
			if body, err = a.BuildRequestBody(resolved, reg, bpath); err != nil {
				return ir.Operation{}, err
			}
		}
	}

	resp, err := a.responseType(doc, reg, op, path)
	if err != nil {
		return ir.Operation{}, err
	}

	opID, _ := op.GetString("operationId")
	summary, _ := op.GetString("summary")
	return ir.Operation{
		Endpoint:     endpoint,
		Name:         naming.ToSnakeCase(opID),
		OperationID:  opID,
		Summary:      summary,
		Deprecated:   op.GetBool("deprecated"),
		Method:       m,
		Arguments:    args,
		RequestBody:  body,
		ResponseType: resp,
		Group:        op.GetStrings("tags")[0],
	}, nil
}

// missingMetadata lists the operation fields required for an operation to
// be modeled that are absent or empty.
func missingMetadata(op *parser.Map) []string {
	var missing []string
	if s, _ := op.GetString("operationId"); s == "" {
		missing = append(missing, "operationId")
	}
	if s, _ := op.GetString("summary"); s == "" {
		missing = append(missing, "summary")
	}
	if r, ok := op.GetMap("responses"); !ok || r.Len() == 0 {
		missing = append(missing, "responses")
	}
	if tags := op.GetStrings("tags"); len(tags) == 0 || tags[0] == "" {
		missing = append(missing, "tags")
	}
	return missing
}

// BuildOperations builds every operation under paths in source order.
// Operations that cannot be modeled are returned as issues; any other
// error stops the build.
func (a *Assembler) BuildOperations(doc *parser.Map, reg *ir.Registry) ([]ir.Operation, []issues.Issue, error) {
	if reg == nil {
		return nil, nil, errRegistryNotBuilt
	}
	rawPaths, _ := doc.Get("paths")
	if rawPaths == nil {
		return []ir.Operation{}, nil, nil
	}
	paths, ok := rawPaths.(*parser.Map)
	if !ok {
		return nil, nil, &oaserrors.SchemaError{Path: "paths", Shape: parser.Describe(rawPaths), Message: "paths must be a mapping"}
	}

	ops := []ir.Operation{}
	var skipped []issues.Issue
	for _, endpoint := range paths.Keys() {
		rawItem, _ := paths.Get(endpoint)
		item, ok := rawItem.(*parser.Map)
		if !ok {
			return nil, nil, &oaserrors.SchemaError{
				Path:    issues.FormatPath("paths", endpoint),
				Shape:   parser.Describe(rawItem),
				Message: "path item must be a mapping",
			}
		}

		for _, method := range item.Keys() {
			if !parser.IsHTTPMethod(method) {
				continue
			}
			op, err := a.BuildOperation(doc, reg, endpoint, method)
			if err != nil {
				var ue *oaserrors.UnsupportedError
				if !errors.As(err, &ue) {
					return nil, nil, err
				}
				skipped = append(skipped, a.skip(item, endpoint, method, ue))
				continue
			}
			ops = append(ops, op)
		}
	}
	return ops, skipped, nil
}

// skip records and logs an operation that was dropped.
func (a *Assembler) skip(item *parser.Map, endpoint, method string, ue *oaserrors.UnsupportedError) issues.Issue {
	issue := issues.Issue{
		Path:     ue.Path,
		Message:  ue.Feature + ": " + ue.Detail,
		Severity: severityFor(ue),
		Method:   method,
		Endpoint: endpoint,
	}
	if op, ok := item.GetMap(method); ok {
		issue.OperationID, _ = op.GetString("operationId")
	}
	a.log.Info("skipped operation",
		"method", strings.ToUpper(method),
		"endpoint", endpoint,
		"operationId", issue.OperationID,
		"reason", issue.Message,
	)
	return issue
}

// severityFor rates a dropped operation. Methods and incomplete entries
// are deliberately not modeled; anything else is input the IR could not
// represent.
func severityFor(ue *oaserrors.UnsupportedError) severity.Severity {
	switch ue.Feature {
	case featureMethod, featureMetadata:
		return severity.SeverityInfo
	default:
		return severity.SeverityWarning
	}
}

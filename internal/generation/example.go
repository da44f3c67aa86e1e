package generation

import (
	"fmt"

	"howtogen/internal"
	"howtogen/internal/annotation"
	"howtogen/internal/model"
	"howtogen/internal/text"
)

func serviceVariableName(service model.Service) string {
	return internal.LowerFirst(service.Name)
}

// Writes the sample call of one method: its annotation, the service
// declaration and the call with both result branches.
func exampleBlock(registry model.Registry, service model.Service, method model.Method) []string {
	variable := serviceVariableName(service)

	lines := annotation.New(fmt.Sprintf("Sample call for %s operation/method", method.Name)).Render()
	lines = append(lines,
		fmt.Sprintf("$%s = new %s();", variable, service.Name),
		fmt.Sprintf("if ($%s->%s(%s) !== false) {", variable, method.Name, ArgumentList(registry, method)),
		text.Indent(fmt.Sprintf("print_r($%s->getResult());", variable), 1),
		"} else {",
		text.Indent(fmt.Sprintf("print_r($%s->getLastError());", variable), 1),
		"}",
	)
	return lines
}

package synth

import (
	"fmt"
	"strings"
)

func (s *Synthesizer) golang(lines int) string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	b.WriteString("import (\n    \"fmt\"\n    \"time\"\n)\n\n")

	for i := 0; i < UnitCount(lines); i++ {
		fmt.Fprintf(&b, "type Component%d struct {\n", i)
		b.WriteString("    Config      map[string]interface{}\n")
		b.WriteString("    Initialized bool\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func NewComponent%d(config map[string]interface{}) *Component%d {\n", i, i)
		fmt.Fprintf(&b, "    return &Component%d{\n", i)
		b.WriteString("        Config:      config,\n")
		b.WriteString("        Initialized: false,\n")
		b.WriteString("    }\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func (c *Component%d) Initialize() {\n", i)
		b.WriteString("    fmt.Println(\"Initializing component\")\n")
		b.WriteString("    c.Initialized = true\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func (c *Component%d) Process(data interface{}) (map[string]interface{}, error) {\n", i)
		b.WriteString("    if !c.Initialized {\n")
		b.WriteString("        return nil, fmt.Errorf(\"component not initialized\")\n")
		b.WriteString("    }\n")
		b.WriteString("    return c.transform(data)\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func (c *Component%d) transform(data interface{}) (map[string]interface{}, error) {\n", i)
		if s.faulty() {
			b.WriteString("    return data.(map[string]interface{}), nil // BUG: panics on non-map input\n")
		} else {
			b.WriteString("    result := map[string]interface{}{\n")
			b.WriteString("        \"data\":      data,\n")
			b.WriteString("        \"timestamp\": time.Now(),\n")
			b.WriteString("    }\n")
			b.WriteString("    return result, nil\n")
		}
		b.WriteString("}\n\n")
	}

	for i := 0; i < FunctionCount(lines); i++ {
		fmt.Fprintf(&b, "func function%d(param1 string, param2 int) map[string]interface{} {\n", i)
		b.WriteString("    return map[string]interface{}{\n")
		b.WriteString("        \"param1\":    param1,\n")
		b.WriteString("        \"param2\":    param2,\n")
		b.WriteString("        \"timestamp\": time.Now().Format(time.RFC3339),\n")
		b.WriteString("    }\n")
		b.WriteString("}\n\n")
	}

	return b.String()
}

package synth

import (
	"fmt"
	"strings"
)

func (s *Synthesizer) java(lines int) string {
	var b strings.Builder
	b.WriteString("package com.example.app;\n\n")
	b.WriteString("import java.util.*;\n")
	b.WriteString("import java.time.LocalDateTime;\n\n")

	for i := 0; i < UnitCount(lines); i++ {
		fmt.Fprintf(&b, "public class Component%d {\n", i)
		b.WriteString("    private Map<String, Object> config;\n")
		b.WriteString("    private boolean initialized;\n\n")
		fmt.Fprintf(&b, "    public Component%d(Map<String, Object> config) {\n", i)
		b.WriteString("        this.config = config;\n")
		b.WriteString("        this.initialized = false;\n")
		b.WriteString("    }\n\n")
		b.WriteString("    public void initialize() {\n")
		b.WriteString("        System.out.println(\"Initializing component\");\n")
		b.WriteString("        this.initialized = true;\n")
		b.WriteString("    }\n\n")
		b.WriteString("    public Map<String, Object> process(Object data) {\n")
		b.WriteString("        if (!initialized) {\n")
		b.WriteString("            throw new RuntimeException(\"Component not initialized\");\n")
		b.WriteString("        }\n")
		b.WriteString("        return transform(data);\n")
		b.WriteString("    }\n\n")
		b.WriteString("    private Map<String, Object> transform(Object data) {\n")
		if s.faulty() {
			b.WriteString("        return (Map<String, Object>) data;  // BUG: ClassCastException\n")
		} else {
			b.WriteString("        Map<String, Object> result = new HashMap<>();\n")
			b.WriteString("        result.put(\"data\", data);\n")
			b.WriteString("        result.put(\"timestamp\", LocalDateTime.now());\n")
			b.WriteString("        return result;\n")
		}
		b.WriteString("    }\n")
		b.WriteString("}\n\n")
	}

	return b.String()
}

package synth

import (
	"fmt"
	"strings"
)

func (s *Synthesizer) javascript(lines int, typed bool) string {
	var b strings.Builder
	if typed {
		b.WriteString("import { Component } from \"./types\";\n\n")
	} else {
		b.WriteString("const Component = require(\"./component\");\n\n")
	}

	for i := 0; i < UnitCount(lines); i++ {
		if typed {
			fmt.Fprintf(&b, "export class Service%d implements Component {\n", i)
			b.WriteString("  private initialized: boolean = false;\n")
			b.WriteString("  private config: Record<string, any>;\n\n")
			b.WriteString("  constructor(config: Record<string, any>) {\n")
		} else {
			fmt.Fprintf(&b, "class Service%d {\n", i)
			b.WriteString("  constructor(config) {\n")
		}
		b.WriteString("    this.config = config;\n")
		b.WriteString("  }\n\n")
		b.WriteString("  async initialize() {\n")
		b.WriteString("    console.log(\"Initializing service\");\n")
		b.WriteString("    this.initialized = true;\n")
		b.WriteString("  }\n\n")
		b.WriteString("  async process(data) {\n")
		b.WriteString("    if (!this.initialized) {\n")
		b.WriteString("      throw new Error(\"Service not initialized\");\n")
		b.WriteString("    }\n")
		b.WriteString("    const result = await this.transform(data);\n")
		b.WriteString("    return result;\n")
		b.WriteString("  }\n\n")
		b.WriteString("  async transform(data) {\n")
		if s.faulty() {
			b.WriteString("    return data.nonexistent.property;  // BUG: Cannot read property\n")
		} else {
			b.WriteString("    return { ...data, processed: true };\n")
		}
		b.WriteString("  }\n")
		b.WriteString("}\n\n")
	}

	return b.String()
}

package synth

import (
	"fmt"
	"strings"
)

func (s *Synthesizer) rust(lines int) string {
	var b strings.Builder
	b.WriteString("use std::collections::HashMap;\nuse chrono::Utc;\n\n")

	for i := 0; i < UnitCount(lines); i++ {
		fmt.Fprintf(&b, "pub struct Component%d {\n", i)
		b.WriteString("    config: HashMap<String, String>,\n")
		b.WriteString("    initialized: bool,\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "impl Component%d {\n", i)
		b.WriteString("    pub fn new(config: HashMap<String, String>) -> Self {\n")
		fmt.Fprintf(&b, "        Component%d {\n", i)
		b.WriteString("            config,\n")
		b.WriteString("            initialized: false,\n")
		b.WriteString("        }\n")
		b.WriteString("    }\n\n")
		b.WriteString("    pub fn initialize(&mut self) {\n")
		b.WriteString("        println!(\"Initializing component\");\n")
		b.WriteString("        self.initialized = true;\n")
		b.WriteString("    }\n\n")
		b.WriteString("    pub fn process(&self, data: &str) -> Result<HashMap<String, String>, String> {\n")
		b.WriteString("        if !self.initialized {\n")
		b.WriteString("            return Err(\"Component not initialized\".to_string());\n")
		b.WriteString("        }\n")
		b.WriteString("        self.transform(data)\n")
		b.WriteString("    }\n\n")
		b.WriteString("    fn transform(&self, data: &str) -> Result<HashMap<String, String>, String> {\n")
		if s.faulty() {
			b.WriteString("        let value: i64 = data.parse().unwrap(); // BUG: panics on non-numeric input\n")
			b.WriteString("        let mut result = HashMap::new();\n")
			b.WriteString("        result.insert(\"data\".to_string(), value.to_string());\n")
			b.WriteString("        Ok(result)\n")
		} else {
			b.WriteString("        let mut result = HashMap::new();\n")
			b.WriteString("        result.insert(\"data\".to_string(), data.to_string());\n")
			b.WriteString("        result.insert(\"timestamp\".to_string(), Utc::now().to_rfc3339());\n")
			b.WriteString("        Ok(result)\n")
		}
		b.WriteString("    }\n")
		b.WriteString("}\n\n")
	}

	return b.String()
}

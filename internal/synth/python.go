package synth

import (
	"fmt"
	"strings"

	"github.com/forgelab/repoforge/internal/domain"
)

func (s *Synthesizer) python(role domain.Role, lines int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"\"\"\nModule for %s\n\"\"\"\n\n", role)
	b.WriteString("import logging\nimport typing\nfrom datetime import datetime\n\n")
	b.WriteString("logger = logging.getLogger(__name__)\n\n")

	for i := 0; i < UnitCount(lines); i++ {
		fmt.Fprintf(&b, "class Component%d:\n", i)
		fmt.Fprintf(&b, "    \"\"\"Class for component %d\"\"\"\n", i)
		b.WriteString("    \n")
		b.WriteString("    def __init__(self, config: dict):\n")
		b.WriteString("        self.config = config\n")
		b.WriteString("        self.initialized = False\n")
		b.WriteString("    \n")
		b.WriteString("    def initialize(self):\n")
		b.WriteString("        \"\"\"Initialize component\"\"\"\n")
		b.WriteString("        logger.info(\"Initializing component\")\n")
		b.WriteString("        self.initialized = True\n")
		b.WriteString("    \n")
		b.WriteString("    def process(self, data: typing.Any) -> typing.Any:\n")
		b.WriteString("        \"\"\"Process data\"\"\"\n")
		b.WriteString("        if not self.initialized:\n")
		b.WriteString("            raise RuntimeError(\"Component not initialized\")\n")
		b.WriteString("        \n")
		b.WriteString("        result = self._transform(data)\n")
		b.WriteString("        return result\n")
		b.WriteString("    \n")
		b.WriteString("    def _transform(self, data: typing.Any) -> typing.Any:\n")
		b.WriteString("        \"\"\"Internal transformation logic\"\"\"\n")
		if s.faulty() {
			b.WriteString("        return data + None  # BUG: TypeError\n")
		} else {
			b.WriteString("        return data\n")
		}
		b.WriteString("\n")
	}

	for i := 0; i < FunctionCount(lines); i++ {
		fmt.Fprintf(&b, "def function_%d(param1: str, param2: int = 0) -> dict:\n", i)
		fmt.Fprintf(&b, "    \"\"\"Function %d description\"\"\"\n", i)
		b.WriteString("    result = {\n")
		b.WriteString("        \"param1\": param1,\n")
		b.WriteString("        \"param2\": param2,\n")
		b.WriteString("        \"timestamp\": datetime.now().isoformat()\n")
		b.WriteString("    }\n")
		b.WriteString("    return result\n\n")
	}

	return b.String()
}

package cfgloader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/filescom/mask"
)

func printConfig(w io.Writer, config any) {
	out, err := yaml.Marshal(mask.StructToOrdMap(config))
	if err != nil {
		fmt.Fprintf(w, "[cfgloader]: failed to marshal config: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Loaded config:\n%s", out)
}

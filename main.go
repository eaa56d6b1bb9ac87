package main

import (
	"fmt"
	"strings"

	"flowwire/dataflow"
	"flowwire/definition"
	"flowwire/params"
	"flowwire/scope"

	"github.com/sirupsen/logrus"
)

const demoPipeline = `
name: demo
processes:
  - name: index
    inputs:
      - { val: genome, from: GRCh38 }
    outputs:
      - { file: index.bin, into: merged }
  - name: align
    inputs:
      - { file: reads.fq, from: [s1.fq, s2.fq] }
      - { env: THREADS, from: 4 }
    outputs:
      - { file: aligned.bam, into: merged, joint: true }
      - { file: "-" }
`

func main() {
	glog := logrus.New()
	glog.SetLevel(logrus.WarnLevel)
	params.SetGlobalLogger(glog)

	wireLogger := logrus.New()
	wireLogger.SetLevel(logrus.DebugLevel)
	wireLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	doc, err := definition.Load(strings.NewReader(demoPipeline))
	if err != nil {
		fmt.Println("Definition failed:", err)
		return
	}

	sc := scope.New()
	wired, err := definition.NewWirer(sc, wireLogger).Wire(doc)
	if err != nil {
		fmt.Println("Wiring failed:", err)
		return
	}

	fmt.Println("=== Pipeline Wiring ===")
	for _, proc := range wired {
		fmt.Printf("%s (%s)\n", proc.Name, proc.ID)
		proc.Inputs.Each(func(name string, ch dataflow.ReadChannel) {
			fmt.Printf("  in  %-12s <- %s\n", name, ch.ID())
		})
		proc.Outputs.Each(func(name string, ch dataflow.WriteChannel) {
			fmt.Printf("  out %-12s -> %s\n", name, ch.ID())
		})
	}
	fmt.Println("scope bindings:", sc.Names())
}

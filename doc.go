/*
Package stratify converts textual decision-tree dumps (as emitted by gradient-boosted
tree tooling) into flat, human-readable strategy tables.

Each strategy is a conjunction of feature (in)equality tests paired with the leaf
value reached when all of them hold. Consumers use the output as business-rule tables
driven by simple feature lookups, with no tree-walking engine at decision time.

# Concept

The pipeline has four stages: a line parser turns the dump into typed nodes and
leaves; a normalizer rewrites OR-conditions into a pure binary condition-tree using
De Morgan's law; an enumerator walks every root-to-leaf path into strategies; and a
contradiction filter drops strategies whose conditions can never hold simultaneously.
The whole computation is a pure function of the input text: no shared state, no I/O
inside the core.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/stratify"
	)

	func main() {
		converter := stratify.New()

		lines, err := converter.Render("0:[device_type=pc] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2")
		if err != nil {
			log.Fatal(err)
		}

		for _, line := range lines {
			fmt.Println(line) // device_type!=pc : 0.2 / device_type=pc : 0.1
		}
	}

File-to-file conversion with atomic output writes is available via ConvertFile, and
the stratify CLI (cmd/stratify) wraps it together with validation and visualization
commands.
*/
package stratify

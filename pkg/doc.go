// Package pkg provides the core libraries for ptable periodic table heat maps.
//
// # Overview
//
// ptable draws the 103 elements from hydrogen to lawrencium on the usual
// 18-column grid, with the lanthanides and actinides in two extra rows. Each
// cell gets a frame shape, a border colour and a fill colour; labels group
// elements under legend entries and gradients map a numeric property through
// a colormap. The pkg directory is organized into these areas:
//
//  1. [element] - Element data, overrides and chemical formulas
//  2. [render] - Layout, shapes, colours, scenes and output sinks
//  3. [config] - TOML configuration files
//  4. [pipeline] - Orchestration (load → render → encode → write)
//  5. [io] - CSV export and override import
//
// # Architecture
//
// The typical data flow through ptable:
//
//	TOML config / table.Config literal
//	         ↓
//	    [config] package (decode)
//	         ↓
//	    [render/table] package (layout + frames + colours → Scene)
//	         ↓
//	    [render/table/sink] or [render/table/preview]
//	         ↓
//	SVG/PNG/JPEG/TIFF/PDF/EPS/JSON output or terminal
//
// # Quick Start
//
// Colour cells by electronegativity and write an SVG:
//
//	import (
//	    "github.com/matzehuels/ptable/pkg/render/table"
//	    "github.com/matzehuels/ptable/pkg/render/table/sink"
//	    "github.com/matzehuels/ptable/pkg/render/table/styles"
//	)
//
//	r, err := table.New(table.Config{
//	    Colors: styles.Spec{
//	        Background: styles.Gradient{Property: "electronegativity", Colorbar: true},
//	    },
//	})
//	scene, err := r.Render(table.RenderOptions{Title: "Electronegativity"})
//	err = sink.Export("electronegativity.svg", scene, false)
//
// # Supporting Packages
//
// [errors] - Structured errors with machine-readable codes. Every
// configuration mistake surfaces as one of its codes.
//
// [observability] - Hooks for pipeline and file I/O events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/table/...       # Specific package
//	go test -run Example                 # Examples only
//
// [element]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/element
// [render]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/buildinfo
//
// [render/table]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/render/table
// [render/table/sink]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/render/table/sink
// [render/table/preview]: https://pkg.go.dev/github.com/matzehuels/ptable/pkg/render/table/preview
package pkg

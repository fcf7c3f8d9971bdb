package app

import (
	"fmt"

	"github.com/depeter/stretchyheader/assets/placeholder"
	"github.com/depeter/stretchyheader/internal/cache"
	"github.com/depeter/stretchyheader/internal/transition"
)

// headerVariant is one image the header can show.
type headerVariant struct {
	class         transition.SizeClass
	all           bool // serves every size class
	src           string
	width, height int
}

// headerVariants lists the images to load. With a fixed ratio one image
// serves every size class.
func (g *Game) headerVariants() []headerVariant {
	h := g.Config.Header
	if !h.SizeClass {
		w := 1000
		src := g.source.Compact
		if src == "" {
			src = g.source.Regular
		}
		return []headerVariant{{all: true, src: src, width: w, height: int(float64(w) / h.HeightRatio)}}
	}
	return []headerVariant{
		{class: transition.SizeClassCompactRegular, src: g.source.Compact, width: int(h.CompactWidth), height: int(h.CompactHeight)},
		{class: transition.SizeClassOther, src: g.source.Regular, width: int(h.RegularWidth), height: int(h.RegularHeight)},
	}
}

func (g *Game) setVariant(v headerVariant, e *cache.Entry) {
	if v.all {
		g.Header.SetAllSources(e)
		return
	}
	g.Header.SetSource(v.class, e)
}

// loadHeaderImages starts loading every variant in the background. A
// variant without a source gets a generated placeholder of its size.
func (g *Game) loadHeaderImages() {
	for _, v := range g.headerVariants() {
		if v.src != "" {
			g.Cache.LoadAsync(v.src, func(e *cache.Entry) { g.setVariant(v, e) })
			continue
		}
		key := fmt.Sprintf("placeholder:%dx%d", v.width, v.height)
		if e := g.Cache.Get(key); e != nil {
			g.setVariant(v, e)
			continue
		}
		go func() {
			e := g.Cache.Put(key, placeholder.Generate(v.width, v.height))
			g.setVariant(v, e)
			g.log.Debug().Str("key", key).Msg("generated placeholder header")
		}()
	}
}

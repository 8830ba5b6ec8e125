package network

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

func nodeIDFromInt(v int64) osm.NodeID { return osm.NodeID(v) }

// ToNodeFeatureCollection serializes every graph node to a Point feature
// carrying its retained tags and `_id`, per §6's persisted-graph convention.
func (g *Graph) ToNodeFeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for id, n := range g.Nodes {
		f := geojson.NewFeature(orb.Point{n.Lon, n.Lat})
		f.Properties["_id"] = int64(id)
		for k, v := range n.Tags {
			f.Properties[k] = v
		}
		fc.Append(f)
	}
	return fc
}

// ToEdgeFeatureCollection serializes every graph edge to a LineString
// feature. osm_id and segment are not emitted; _u_id/_v_id carry endpoint
// identity instead, per §4.4's post-geometry persisted form.
func (g *Graph) ToEdgeFeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range g.Edges() {
		ls := make(orb.LineString, len(e.Geometry))
		for i, c := range e.Geometry {
			ls[i] = orb.Point{c[0], c[1]}
		}
		f := geojson.NewFeature(ls)
		f.Properties["_u_id"] = int64(e.From)
		f.Properties["_v_id"] = int64(e.To)
		f.Properties["length"] = e.Length
		for k, v := range e.Tags {
			f.Properties[k] = v
		}
		if e.Incline != nil {
			f.Properties["incline"] = *e.Incline
		}
		if e.CurbRamps != nil {
			f.Properties["curbramps"] = *e.CurbRamps
		}
		fc.Append(f)
	}
	return fc
}

// FromFeatureCollections rebuilds a Graph from a previously serialized pair
// of feature collections, the inverse of ToNodeFeatureCollection/
// ToEdgeFeatureCollection. It is used by round-trip tests and by any stage
// that resumes from a partially-built, on-disk graph.
func FromFeatureCollections(nodes, edges *geojson.FeatureCollection) (*Graph, error) {
	g := NewGraph()

	for _, f := range nodes.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("network: node feature geometry is not a Point")
		}
		id, err := propInt64(f.Properties, "_id")
		if err != nil {
			return nil, err
		}
		n := g.AddNode(nodeIDFromInt(id), pt[0], pt[1])
		tags := make(map[string]string)
		for k, v := range f.Properties {
			if k == "_id" {
				continue
			}
			if s, ok := v.(string); ok {
				tags[k] = s
			}
		}
		if len(tags) > 0 {
			n.Tags = tags
			n.Retained = true
		}
	}

	for _, f := range edges.Features {
		ls, ok := f.Geometry.(orb.LineString)
		if !ok {
			return nil, fmt.Errorf("network: edge feature geometry is not a LineString")
		}
		u, err := propInt64(f.Properties, "_u_id")
		if err != nil {
			return nil, err
		}
		v, err := propInt64(f.Properties, "_v_id")
		if err != nil {
			return nil, err
		}

		e := &Edge{From: nodeIDFromInt(u), To: nodeIDFromInt(v)}
		e.Geometry = make([][2]float64, len(ls))
		for i, p := range ls {
			e.Geometry[i] = [2]float64{p[0], p[1]}
		}

		tags := make(map[string]string)
		for k, val := range f.Properties {
			switch k {
			case "_u_id", "_v_id", "length", "incline", "curbramps":
				continue
			}
			if s, ok := val.(string); ok {
				tags[k] = s
			}
		}
		e.Tags = tags

		if lenVal, ok := f.Properties["length"]; ok {
			e.Length = toFloat64(lenVal)
		}
		if incVal, ok := f.Properties["incline"]; ok {
			inc := toFloat64(incVal)
			e.Incline = &inc
		}
		if crVal, ok := f.Properties["curbramps"]; ok {
			cr := int(toFloat64(crVal))
			e.CurbRamps = &cr
		}

		g.AddEdge(e)
	}

	return g, nil
}

func propInt64(props geojson.Properties, key string) (int64, error) {
	v, ok := props[key]
	if !ok {
		return 0, fmt.Errorf("network: missing property %q", key)
	}
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err
	default:
		return 0, fmt.Errorf("network: property %q has unsupported type %T", key, v)
	}
}

func toFloat64(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	}
	return 0
}

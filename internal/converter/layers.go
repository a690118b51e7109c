package converter

import (
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

// parentChildLayers returns the names of layerName itself plus every layer
// that shares a full path with it, i.e. its parents and children. Hidden
// layers are skipped unless includeHidden is set.
func parentChildLayers(file *rhino.File, layerName string, includeHidden bool) []string {
	seen := map[string]bool{}
	var names []string
	for _, layer := range file.Layers {
		if !includeHidden && !layer.Visible {
			continue
		}
		path := layer.PathNames()
		onPath := false
		for _, name := range path {
			if name == layerName {
				onPath = true
				break
			}
		}
		if !onPath {
			continue
		}
		for _, name := range path {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// objectsOnLayer returns the visible objects directly on a layer. A hidden
// layer yields nothing unless includeHidden is set.
func objectsOnLayer(file *rhino.File, layer rhino.Layer, includeHidden bool) []rhino.Object {
	if !includeHidden && !layer.Visible {
		return nil
	}
	return objectsByLayerIndex(file, []int32{layer.Index})
}

// objectsOnParentChild returns the visible objects on a layer and all of its
// child layers.
func objectsOnParentChild(file *rhino.File, layerName string, includeHidden bool) []rhino.Object {
	names := parentChildLayers(file, layerName, includeHidden)
	if len(names) == 0 {
		return nil
	}
	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}
	var indexes []int32
	for _, layer := range file.Layers {
		if !wanted[layer.Name] {
			continue
		}
		if !includeHidden && !layer.Visible {
			continue
		}
		indexes = append(indexes, layer.Index)
	}
	return objectsByLayerIndex(file, indexes)
}

// objectsByLayerIndex returns the visible objects on any of the layers.
func objectsByLayerIndex(file *rhino.File, indexes []int32) []rhino.Object {
	var out []rhino.Object
	for _, obj := range file.Objects {
		if !obj.Attributes.Visible {
			continue
		}
		for _, idx := range indexes {
			if obj.Attributes.LayerIndex == idx {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}

package tools

import (
	"fmt"

	"google.golang.org/genai"
)

// CheckArgs validates model-supplied arguments against a tool's parameter
// schema: required properties must be present and every supplied property
// must match its declared type. Nested objects and arrays are checked one
// level at a time as they are encountered.
func CheckArgs(schema *genai.Schema, args map[string]any) error {
	if schema == nil {
		return nil
	}
	return checkObject("", schema, args)
}

func checkObject(path string, schema *genai.Schema, value map[string]any) error {
	for _, name := range schema.Required {
		if _, ok := value[name]; !ok {
			return fmt.Errorf("missing required argument %q", joinPath(path, name))
		}
	}
	for name, prop := range schema.Properties {
		v, ok := value[name]
		if !ok {
			continue
		}
		if err := checkValue(joinPath(path, name), prop, v); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(path string, schema *genai.Schema, v any) error {
	switch schema.Type {
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("argument %q must be a string", path)
		}
	case genai.TypeNumber, genai.TypeInteger:
		switch v.(type) {
		case float64, float32, int, int32, int64:
		default:
			return fmt.Errorf("argument %q must be a number", path)
		}
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("argument %q must be a boolean", path)
		}
	case genai.TypeArray:
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("argument %q must be an array", path)
		}
		if schema.Items != nil {
			for i, item := range items {
				if err := checkValue(fmt.Sprintf("%s[%d]", path, i), schema.Items, item); err != nil {
					return err
				}
			}
		}
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("argument %q must be an object", path)
		}
		if err := checkObject(path, schema, obj); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

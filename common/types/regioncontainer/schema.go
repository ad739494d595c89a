package regioncontainer

// JSON schema of the region document format; documents are validated
// against it before decoding
const regionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["data"],
	"properties": {
		"meta": {
			"type": "object",
			"properties": {
				"readme": { "type": "string" },
				"kind": { "type": "string" },
				"date": { "type": "string" }
			}
		},
		"data": {
			"type": "object",
			"required": ["outline"],
			"properties": {
				"outline": { "$ref": "#/definitions/polygon" },
				"holes": {
					"type": "array",
					"items": { "$ref": "#/definitions/polygon" }
				},
				"viewpoints": {
					"type": "array",
					"items": { "$ref": "#/definitions/viewpoint" }
				}
			}
		}
	},
	"definitions": {
		"point": {
			"type": "array",
			"items": { "type": "number" },
			"minItems": 2,
			"maxItems": 2
		},
		"polygon": {
			"type": "array",
			"items": { "$ref": "#/definitions/point" },
			"minItems": 3
		},
		"viewpoint": {
			"type": "object",
			"required": ["id", "position", "facing", "halfangle"],
			"properties": {
				"id": { "type": "string" },
				"position": { "$ref": "#/definitions/point" },
				"facing": { "type": "number" },
				"halfangle": { "type": "number", "exclusiveMinimum": 0, "maximum": 180 }
			}
		}
	}
}`

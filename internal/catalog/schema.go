package catalog

// catalogSchemaName identifies the embedded catalog schema.
const catalogSchemaName = "catalog.schema.json"

// catalogSchema is the JSON schema every world catalog file must satisfy
// before semantic validation runs.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["world", "terminal_depth", "fallback_resource", "resources", "pickaxe_tiers", "training_tiers"],
  "properties": {
    "world": {"type": "string", "minLength": 1},
    "terminal_depth": {"type": "integer", "minimum": 1},
    "fallback_resource": {"type": "string", "minLength": 1},
    "resources": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "rarity", "value", "first_depth", "first_health", "last_health"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "rarity": {"type": "integer", "minimum": 1},
          "value": {"type": "integer", "minimum": 0},
          "first_depth": {"type": "integer", "minimum": 0},
          "first_health": {"type": "integer", "minimum": 1},
          "last_health": {"type": "integer", "minimum": 1},
          "color": {"type": "string"},
          "icon": {"type": "string"}
        }
      }
    },
    "bonus_cache": {
      "type": "object",
      "required": ["health", "gem_reward", "spawn_chance"],
      "properties": {
        "health": {"type": "integer", "minimum": 1},
        "gem_reward": {"type": "integer", "minimum": 0},
        "spawn_chance": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "pickaxe_tiers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["tier", "name", "base_damage"],
        "properties": {
          "tier": {"type": "integer", "minimum": 0},
          "name": {"type": "string", "minLength": 1},
          "base_damage": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    },
    "training_tiers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["tier", "name", "gain_constant"],
        "properties": {
          "tier": {"type": "integer", "minimum": 0},
          "name": {"type": "string", "minLength": 1},
          "gain_constant": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    }
  }
}`

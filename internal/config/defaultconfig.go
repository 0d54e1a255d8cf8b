package config

func GetDefaultConfigStr() string {
	return `# Formatting directive applied to every key and value, without the leading "%"
# "v" prints {1: a}, "#v" prints Go syntax such as {1: "a"}, "+v" adds struct field names
verb: "#v"

# Print mappings nested inside values in sorted order too
nested: true

# Print the name of each input before its contents
header: true

# Inputs must be detected as one of these MIME types (or a subtype of one)
# See https://github.com/gabriel-vasile/mimetype/blob/master/supported_mimes.md for all available MIME types
accepted-formats:
  - text/plain
  - application/json
`
}

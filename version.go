package formlang

// Version is the library version reported by the CLI, the HTTP API and the MCP server.
const Version = "0.3.0"

package tiktoken

// Generate documentation for the root package
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/agentstation/tiktoken --repository.default-branch master --repository.path /

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/tiktoken/README.md -e ./cmd/tiktoken --embed --repository.url https://github.com/agentstation/tiktoken --repository.default-branch master --repository.path /cmd/tiktoken

// CLI for computing body metrics and segment scales without the API server.
// Usage: go run ./cmd/bodyviz metrics --height 180 --weight 90 --sex male --age 35
package main

func main() {
	Execute()
}

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a batch run:
//
//   - TextNormaliser: The ordered cell normalisation pipeline
//   - ArchiveExtractor: Unpacks archives into the input directory
//   - TableReader / TableWriter: Tabular file codecs
//   - Workspace: Enumerates and cleans the input directory
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be absent - the application degrades gracefully:
//
//   - ScriptNormaliser: Script-specific width and variant folding. When
//     unavailable the pipeline skips its first stage and the operator is
//     asked to confirm before a run proceeds.
//   - Confirmer: Operator prompt. Without it degraded runs are refused
//     unless the settings assume yes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven

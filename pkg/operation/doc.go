/*
Package operation implements the core business logic for translating
documentation files.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Translate) |
	+------+------+

🎯 Purpose:
- Orchestrates reading, translating, and writing of manifest files
- Applies the marker translator and sibling link rules
- Coordinates between provider (source) and status (destination)

🔄 Flow:
1. Walks the manifest in order
2. Skips ignored files, notices missing sources
3. Translates content and passes links through the replacer
4. Delegates file storage and bookkeeping to the status package

🤝 Interfaces:
- Provider: source of truth for files
- StatusMgr: destination storage, per-file status, lock file
- Translator / Replacer: content transforms

📝 Design Philosophy:
The operation package holds the orchestration only. File I/O lives in the
status package and source retrieval in providers, so operations stay simple
to test with a stub provider and a temp destination.
*/
package operation

/*
Package importers assembles training data for the conversational pipeline.

Leaf importers (FileImporter, MultiProjectImporter) read raw project files.
Decorator importers wrap other importers to combine or augment what they
produce:

  - CombinedImporter fans out to several importers and merges their results.
  - RetrievalImporter reconciles retrieval-intent metadata between the
    domain and the NLU data.
  - E2EImporter turns literal text turns in stories into first-class
    actions and NLU examples.
  - CoreOnlyImporter / NLUOnlyImporter suppress the half of the data a
    specialized training run must not read.

LoadFromConfig builds the standard chain from a configuration document:
E2EImporter(RetrievalImporter(CombinedImporter(leaves...))), optionally
wrapped for Core-only or NLU-only training. Importer variants are resolved
against a static registry; hosts register their own variants with Register.
*/
package importers

// Package turkishstemmer reduces inflected Turkish words to stems by
// stripping suffixes.
//
// Turkish is agglutinative: a single word carries plural, possessive, case
// and predicative endings stacked on one root (evlerinden = ev + ler + i +
// nden). The stemmer walks three suffix machines over a word, peeling
// endings in reverse attachment order while enforcing vowel harmony, and
// then picks the best candidate by length.
//
// The zero-configuration path uses the embedded default tables:
//
//	stemmer, err := turkishstemmer.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	stem := stemmer.Stem("kitaplar") // "kitap"
//
// Custom tables come in through a ports.TableLoader, typically the YAML
// loader in pkg/adapters/file:
//
//	stemmer, err := turkishstemmer.New(
//		turkishstemmer.WithLoader(file.NewDir("./tables")),
//	)
//
// Stemming is deterministic and the Stemmer is safe for concurrent use.
package turkishstemmer

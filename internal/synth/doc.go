// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package synth generates deterministic, template-based content for the
recommendation engine when stored items cannot answer a request.

The Synthesizer implements recommend.ContentSynthesizer. Every method is a
pure function of its arguments and the static catalogs in this package:
there is no network access, no randomness and no wall-clock timestamp on
generated items, so identical inputs always produce identical output.

# Catalogs

  - Query templates: five titles per query intent, each linked to an
    intent-specific search destination.
  - Query trending templates: ten titles linked to trend, news, social or
    discussion search pages depending on the title.
  - Personalized templates: five titles per category (three are used),
    with a per-category table of reference links matched exactly, then
    partially, then by category default.
  - Curated topics: five trending topics per category with their
    reference link and publisher.
  - Suggestion templates and category phrases for query completion.

# Scores

Synthesized items carry the same score fields as stored items:

  - QueryRecommendations: relevance 0.95 - 0.05*i
  - QueryTrending: trend 100 - 5*i
  - Personalized: relevance 0.8 - 0.1*i per category, 0.9 per keyword
  - CategoryTrending: trend 100 - 10*i

The engine rescores query and query-trending items against the literal
query, so the template scores only order items of the other tiers.

# Thread Safety

A Synthesizer is immutable after construction and safe for concurrent use.
*/
package synth

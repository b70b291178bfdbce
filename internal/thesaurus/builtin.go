// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package thesaurus

// Builtin returns a small thesaurus of common emotional vocabulary, used when
// no synset file is configured.
func Builtin() *Thesaurus {
	return New(map[string][][]string{
		"love":       {{"love"}, {"love", "passion"}, {"beloved", "dear", "dearest", "honey", "love"}},
		"romance":    {{"romance", "love_affair"}, {"romanticism", "romance"}},
		"romantic":   {{"romantic", "amatory", "amorous"}},
		"happy":      {{"happy"}, {"felicitous", "happy"}, {"glad", "happy"}},
		"joy":        {{"joy", "joyousness", "joyfulness"}, {"joy", "delight", "pleasure"}},
		"cheerful":   {{"cheerful"}},
		"funny":      {{"amusing", "comic", "comical", "funny", "laughable", "mirthful", "risible"}},
		"angry":      {{"angry"}, {"furious", "raging", "tempestuous", "wild"}},
		"anger":      {{"anger", "choler", "ire"}, {"anger", "angriness"}},
		"rage":       {{"rage", "fury", "madness"}},
		"sad":        {{"sad"}, {"sad", "deplorable", "distressing", "lamentable", "pitiful", "sorry"}},
		"sadness":    {{"sadness", "unhappiness"}, {"sadness", "sorrowfulness"}},
		"grief":      {{"grief", "heartache", "heartbreak", "brokenheartedness"}},
		"tragic":     {{"tragic", "tragical"}},
		"fear":       {{"fear", "fearfulness", "fright"}, {"concern", "care", "fear"}},
		"scary":      {{"chilling", "scarey", "scary", "shivery", "shuddery"}},
		"horror":     {{"horror"}, {"horror", "repugnance", "repulsion", "revulsion"}},
		"afraid":     {{"afraid"}, {"afraid", "apprehensive"}},
		"surprise":   {{"surprise"}, {"surprise", "surprisal"}},
		"surprising": {{"surprising"}},
		"shock":      {{"daze", "shock", "stupor"}, {"shock", "impact"}},
		"thrilling":  {{"thrilling", "exciting"}},
		"hero":       {{"hero", "heroic_champion", "champion", "fighter", "paladin"}},
		"villain":    {{"villain", "scoundrel"}, {"villain", "baddie"}},
	})
}

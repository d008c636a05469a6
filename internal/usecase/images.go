package usecase

import "strings"

// gameImages maps lowercased game names to their artwork path. Declarative
// configuration: lookups are case-insensitive, unknown games fall back to
// the default artwork.
var gameImages = map[string]string{
	"sugar rush 1000":                      "/images/sugar-rush-1000.avif",
	"roosters revenge":                     "/images/rooster.avif",
	"mines":                                "/images/mines.avif",
	"hilo":                                 "/images/hilo.avif",
	"pump":                                 "/images/pump.avif",
	"infernus":                             "/images/infernus.avif",
	"pine of plinko 2":                     "/images/pine-of-plinko-2.avif",
	"dracs stacks":                         "/images/dracs-stacks.avif",
	"drac's stacks":                        "/images/dracs-stacks.avif",
	"flip":                                 "/images/flip.avif",
	"plinko":                               "/images/plinko.avif",
	"chaos crew":                           "/images/chaos crew.avif",
	"shaolin master":                       "/images/shaolin-master.avif",
	"hand of anubis":                       "/images/hand-of-anubis.avif",
	"2025 hit slot":                        "/images/2025-hit-slot.avif",
	"big bass vegas double down deluxe":    "/images/double-down-deluxe.avif",
	"the dog house - muttley crew":         "/images/go-house-mutley.avif",
	"magic piggy":                          "/images/magic-piggy.avif",
	"sugar rush":                           "/images/sugar-rush.avif",
	"super mega monsters":                  "/images/super-mega-monsters.avif",
	"hot rocks":                            "/images/hot-rocks.avif",
	"gates of olympus 1000":                "/images/gates-1000.avif",
	"gates of olympus super scatter":       "/images/gates-super-scatter.avif",
	"broadsiders!":                         "/images/broadsiders.avif",
	"bonsai banzai":                        "/images/bonsai.avif",
	"munchies":                             "/images/munchies.avif",
	"samurai dogs unleashed":               "/images/samurai-dogs-unleashed.avif",
	"buffaloads":                           "/images/buffaloads.avif",
	"juice monsters":                       "/images/juice-monsters.avif",
	"book of monsters":                     "/images/book-of-monsters.avif",
	"skate or die":                         "/images/skate-or-die.avif",
	"duck hunters":                         "/images/duck-hunters.avif",
	"brute force":                          "/images/brute-force.avif",
	"rock paper scissors":                  "/images/rps.avif",
	"doomsday saloon":                      "/images/doomsday-saloon.avif",
	"sweet bonanza 1000":                   "/images/sweet-bonanza-1000.avif",
	"san quentin 2: death row":             "/images/san-quenten-2.avif",
	"xways hoarder xways":                  "/images/xways-hoarder-x.avif",
	"fire in the hole 2":                   "/images/fire-in-the-hole-2.avif",
	"ugliest catch":                        "/images/ugliest-catch.avif",
	"road rage":                            "/images/road-rage.avif",
	"xways hoarder 2":                      "/images/xways-hoarder-2.avif",
	"san quentin xways":                    "/images/san-quenten.avif",
	"brick snake 2000":                     "/images/brick-snake-2000.avif",
	"donut division":                       "/images/donut-division.avif",
	"barn festival":                        "/images/barn-festival.avif",
	"wild west gold":                       "/images/wild-west-wilds.avif",
	"warrior ways":                         "/images/warrior-ways.avif",
	"strength of hercules":                 "/images/strength-of-herc.avif",
	"wanted":                               "/images/wanted-dead-or-alive.avif",
	"the dog house megaways":               "/images/dog-house-mega.avif",
	"toshi video club":                     "/images/toshii-video.avif",
	"bluebeard's treasure":                 "/images/bluebeard.avif",
	"tanked":                               "/images/tanked.avif",
	"dj psycho":                            "/images/dj-psycho.avif",
	"outsourced: payday":                   "/images/outsourced-payday.avif",
	"outsourced":                           "/images/outsourced.avif",
	"the crypt":                            "/images/the-crypt.avif",
	"monkey's gold xpays":                  "/images/monkeys-gold-xpays.avif",
	"infectious 5 xways":                   "/images/infectious-5-xways.avif",
	"fire in the hole xbomb":               "/images/fire-in-the-hole-x.avif",
	"mental":                               "/images/mental.avif",
	"mental 2":                             "/images/mental-2.avif",
	"dead, dead or deader":                 "/images/dead-dead-or-dead.avif",
	"folsom prison":                        "/images/folsom-prison.avif",
	"stockholm syndrome":                   "/images/stockholm-syndrome.avif",
	"das xboot":                            "/images/das-xboot.avif",
	"blood & shadow":                       "/images/blood-and-shadow.avif",
	"blood & shadow 2":                     "/images/blood-and-shadow-2.avif",
	"poker":                                "/images/poker.avif",
	"crash":                                "/images/crash.avif",
	"slide":                                "/images/slide.avif",
	"keno":                                 "/images/keno.avif",
	"tome of life":                         "/images/tome-of-life.avif",
	"cases":                                "/images/cases.avif",
	"diamonds":                             "/images/diamonds.avif",
	"dice":                                 "/images/dice.avif",
	"limbo":                                "/images/limbo.avif",
	"dragon tower":                         "/images/dragon-tower.avif",
	"sportsbook":                           "/images/soccer.avif",
	"cash surge":                           "/images/cash-surge.avif",
	"aviamasters":                          "/images/avia-masters.avif",
	"chicken man":                          "/images/chicken-man.avif",
	"gold express":                         "/images/gold-express.avif",
	"avia-masters":                         "/images/double-rainbow.avif",
	"king carrot":                          "/images/king-carrot.avif",
	"barbarossa":                           "/images/barbarossa.avif",
	"le pharaoh":                           "/images/le-pharoah.avif",
	"buddha megaways":                      "/images/buddha-megaways.avif",
	"donny dough":                          "/images/donny-dough.avif",
	"lucky ducky":                          "/images/lucky-ducky.avif",
	"barbarossa revenge":                   "/images/barb-revenge.avif",
	"fire portals":                         "/images/fire-portals.avif",
	"puffer stacks":                        "/images/puffer-stacks.avif",
	"ember fall":                           "/images/ember-fall.avif",
	"le bandit":                            "/images/le-bandit.avif",
	"wings of horus":                       "/images/wings-of-horus.avif",
	"the ringmaster's whopping wins":       "/images/ringmaster.avif",
	"sixsixsix":                            "/images/six-six.avif",
	"tiny toads":                           "/images/tiny-toad.avif",
	"super sticky piggy":                   "/images/super-sticky.avif",
	"flaming chicken: highway hazard":      "/images/flaming-chicken.avif",
	"razor ways":                           "/images/razor-ways.avif",
	"zombie rabbit invasion":               "/images/zombie-rabbit.avif",
	"zeus vs hades - gods of war":          "/images/zeus-vs-hades.avif",
	"jokerjam":                             "/images/joker-jam.avif",
	"blaze buddies":                        "/images/blaze-buddies.avif",
	"barrel bonanza":                       "/images/barrel-bonanza.avif",
}

const defaultGameImage = "/images/defaultGame.jpeg"

// GameImage returns the artwork path for a game, case-insensitively.
func GameImage(name string) string {
	if img, ok := gameImages[strings.ToLower(name)]; ok {
		return img
	}
	return defaultGameImage
}

package kindred

// GraphQL operation names.
const (
	opSendOTP     = "sendMagicLinkOrOTP"
	opVerifyOTP   = "FinishEmailLoginUser"
	opCurrentUser = "me"
	opExploreList = "exploreList"
)

// mutationSendOTP starts the email login flow by sending a one-time
// passcode (or magic link) to the user's inbox.
const mutationSendOTP = `
mutation sendMagicLinkOrOTP($email: String!, $path: String) {
  startEmailLoginUser(email: $email, path: $path) {
    mode
    length
  }
}
`

// mutationVerifyOTP exchanges the emailed passcode for access and refresh
// tokens.
const mutationVerifyOTP = `
mutation FinishEmailLoginUser($deviceId: String, $email: String!, $emailToken: String!) {
  finishEmailLoginUser(deviceId: $deviceId, email: $email, emailToken: $emailToken) {
    accessToken
    refreshToken
  }
}
`

// queryCurrentUser is a minimal authenticated query used to validate a
// bearer token quickly.
const queryCurrentUser = `
query {
  me {
    id
    email
  }
}
`

// queryExploreList is the paginated polygon search. The fragment set mirrors
// the platform web client's request so the response shape stays stable.
const queryExploreList = `
query exploreList($filter: FlexibleSearchFilter!, $pagination: Pagination!, $sortedAt: Date!, $width: Int!, $avatarWidth: Int!) {
  getHomesWithSearchCriteria(filter: $filter, pagination: $pagination, sortedAt: $sortedAt) {
    page
    hasMore
    didFindPerfectMatches
    homeRecs {
      home {
        ...HomeCardData
      }
      matchingStatus { ...SearchResultScore }
      household { ...SearchHousehold }
    }
  }
}

fragment HomeCardData on Home {
  id
  status
  destination { id name region }
  media { url thumbnailUrl(width: $width) }
  title
  titleV2 { translation originalLanguage }
  availabilitiesWithoutBookedDates { ...HomeAvailability }
  swapAvailabilitiesV2 { ...SwapAvailabilities }
  isFavorite
  homeProfileProgress
  maxGuestsLimit
  workspacesCount
  bathrooms
  bedroomsCount
  bedsCount
  petPreference
  petHostingDetails
  lat
  lon
  preSelect { ...PreSelectDates }
  swapQuality
  owner { id displayName isOpenForInquiry }
  swapAvailabilitiesV2 { destinationIds destinationNames }
  excludeHomeMediaFromMarketing
  pricingPreview { ...PublicPreviewPricing }
  restrictionReasons
}

fragment HomeAvailability on HomeAvailability { id homeId startDate endDate }
fragment SwapAvailabilities on HomeSwapAvailability {
  id swapAvailabilityId start end tripLengthsV2 minimumNights dateRanges
  destinationIds destinationNames destinationName travelPlanId
  travelPlan {
    tripTypes { ...HomeTripType }
    minBedrooms minBathrooms minBeds totalGuests
    homeFilters { ...HomeFilters }
  }
  swapDestination { name }
}
fragment HomeTripType on HomeTripType { name displayName photoUrl }
fragment HomeFilters on HomeFilter {
  ... on AmenityFilter { __typename amenity enabled }
  ... on PetPreferenceFilter { __typename petPreference enabled }
  ... on BedTypeFilter { __typename bed enabled }
  ... on CompositeHomeFilter { __typename compositeFilter enabled }
}
fragment PreSelectDates on PreSelect { dateRange isSwap }
fragment PublicPreviewPricing on PricingPreviewPublic {
  fees { ...TripPricingFee }
  totalMoney { ...TripMoneyDisplay }
  moneyPerNight { ...TripMoneyDisplay }
  credit { totalCredits }
  pricingComparison { totalMoney { amount currency } moneyPerNight { ...TripMoneyDisplay } totalNights }
}
fragment TripPricingFee on PricingFee { type total { amount currency } }
fragment TripMoneyDisplay on MoneyDisplay { amount currency displayString }
fragment SearchResultScore on MatchingResult {
  alternateDates alternateLocation lessBedrooms lessWorkstations lessBeds lessHomeCapacity noPetsAllowed needPetsFriendlyHomeOtherSide score
}
fragment SearchHousehold on BaseHouseholdProfile {
  id
  primaryResident { displayName image { url(width: $avatarWidth) } }
  householdImages { url(width: $avatarWidth) }
}
`
